package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NotACat1/WeatherTerminal/pkg/fileutil"
	"github.com/NotACat1/WeatherTerminal/pkg/timeutil"
)

/*
Responsibilities

- Single authority on whether a cached upstream response is still fresh
- Durable recording of operational events (daily log files)
- Durable recording of API usage (append-only ledger)

Degradation guarantees

- A missing or corrupt cache file is a cold cache, never a fatal error
- An unwritable log or ledger file skips the line, never aborts
- Initialization failures are surfaced on the echo sink and ignored

Exactly one Store is constructed per process and handed to the
components that need it; there is no package-level accessor.
*/

type Store struct {
	dataDir string
	clock   timeutil.Clock
	echo    EchoSink
}

// New constructs a Store rooted at dataDir. The echo sink receives
// WARNING and ERROR lines in addition to the daily log file.
func New(dataDir string, clock timeutil.Clock, echo EchoSink) *Store {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	if echo == nil {
		echo = NoopEcho{}
	}
	return &Store{
		dataDir: dataDir,
		clock:   clock,
		echo:    echo,
	}
}

func (s *Store) cachePath() string {
	return filepath.Join(s.dataDir, "cache.json")
}

func (s *Store) logsDir() string {
	return filepath.Join(s.dataDir, "logs")
}

func (s *Store) logPath() string {
	name := "log_" + timeutil.DayStamp(s.clock.Now()) + ".txt"
	return filepath.Join(s.logsDir(), name)
}

func (s *Store) usagePath() string {
	return filepath.Join(s.dataDir, "usage.txt")
}

// Init ensures the data directory, the log directory, today's log file
// and the usage ledger (with its header) exist. It is idempotent:
// repeated calls never truncate or duplicate existing content.
// Failures are reported on the echo sink because no log file is
// guaranteed to be writable yet; they do not abort startup.
func (s *Store) Init() {
	if err := fileutil.EnsureDir(s.logsDir()); err != nil {
		s.echo.Echo(SeverityError, fmt.Sprintf("store init: %v", err))
		return
	}

	// Touch today's log file without truncating it.
	if f, err := os.OpenFile(s.logPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		s.echo.Echo(SeverityError, fmt.Sprintf("store init: %v", err))
	} else {
		f.Close()
	}

	s.ensureUsageHeader()
}

// ensureUsageHeader writes the ledger header exactly once, when the
// file is missing or empty.
func (s *Store) ensureUsageHeader() {
	info, err := os.Stat(s.usagePath())
	if err == nil && info.Size() > 0 {
		return
	}
	if err != nil && !os.IsNotExist(err) {
		s.echo.Echo(SeverityError, fmt.Sprintf("store init: %v", err))
		return
	}
	if err := fileutil.AppendLine(s.usagePath(), usageHeader); err != nil {
		s.echo.Echo(SeverityError, fmt.Sprintf("store init: %v", err))
	}
}
