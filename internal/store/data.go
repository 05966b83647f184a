package store

import (
	"strings"
	"time"
)

// Persistence model

// cacheLifetime is the fixed window after which a cached payload is
// considered stale and treated as absent.
const cacheLifetime = 30 * time.Minute

// cacheEntryDTO is the on-disk shape of one cached upstream response.
// The snapshot file is a single JSON object mapping normalized location
// key to this record.
type cacheEntryDTO struct {
	Data      string `json:"data"`
	Timestamp string `json:"timestamp"`
	Checksum  string `json:"checksum,omitempty"`
}

type cacheSnapshot map[string]cacheEntryDTO

// Severity classifies log events, ordered by increasing urgency.
// SeverityWarning and above are additionally surfaced on the
// interactive output; debug and info lines are file-only.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// EchoSink receives log lines that must be surfaced to the user in
// addition to being written to the daily log file. The store calls it
// synchronously; implementations must not call back into the store.
type EchoSink interface {
	Echo(severity Severity, line string)
}

// NoopEcho implements EchoSink but does nothing. Tests (or callers that
// only want files) can inject it instead of a renderer.
type NoopEcho struct{}

func (NoopEcho) Echo(Severity, string) {}

// normalizeKey reduces a location string to its canonical cache key.
// Keys are compared case-insensitively; no other normalization is
// applied, so "London" and "London,UK" remain distinct entries.
func normalizeKey(location string) string {
	return strings.ToLower(location)
}

// usageHeader is the first line of a freshly created usage ledger.
const usageHeader = "=== WeatherTerminal API usage ==="
