package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
	"github.com/NotACat1/WeatherTerminal/pkg/fileutil"
	"github.com/NotACat1/WeatherTerminal/pkg/hashutil"
)

// GetCached returns the cached payload for location if a fresh entry
// exists. An entry is fresh while now - storedAt <= 30 minutes. Expired
// or corrupt entries are removed from the persisted snapshot before
// reporting a miss. A missing or unparsable snapshot file is a cold
// cache, not an error.
func (s *Store) GetCached(location string) (string, bool) {
	key := normalizeKey(location)

	snapshot, err := s.loadSnapshot()
	if err != nil {
		s.LogEvent(fmt.Sprintf("cache read degraded to miss: %v", err), SeverityWarning)
		return "", false
	}

	entry, ok := snapshot[key]
	if !ok {
		return "", false
	}

	if reason, stale := s.entryStale(entry); stale {
		s.LogEvent(fmt.Sprintf("evicting cache entry %q: %s", key, reason), SeverityDebug)
		delete(snapshot, key)
		if err := s.persistSnapshot(snapshot); err != nil {
			s.LogEvent(fmt.Sprintf("cache eviction not persisted: %v", err), SeverityWarning)
		}
		return "", false
	}

	return entry.Data, true
}

// PutCached upserts the payload for location with the current
// timestamp and rewrites the whole snapshot. Last write wins for the
// same key. Failures are logged and swallowed; the caller cannot act
// on them anyway.
func (s *Store) PutCached(location string, payload string) {
	key := normalizeKey(location)

	snapshot, err := s.loadSnapshot()
	if err != nil {
		// Corrupt or unreadable snapshot: start over with an empty one.
		s.LogEvent(fmt.Sprintf("cache snapshot reset: %v", err), SeverityWarning)
		snapshot = cacheSnapshot{}
	}

	checksum, hashErr := hashutil.HashBytes([]byte(payload), hashutil.HashAlgoBLAKE3)
	if hashErr != nil {
		// Unreachable with a supported algorithm; store the entry without
		// a checksum rather than dropping it.
		s.LogEvent(fmt.Sprintf("cache checksum skipped: %v", hashErr), SeverityWarning)
	}

	snapshot[key] = cacheEntryDTO{
		Data:      payload,
		Timestamp: s.clock.Now().Format(time.RFC3339),
		Checksum:  checksum,
	}

	if err := s.persistSnapshot(snapshot); err != nil {
		s.LogEvent(fmt.Sprintf("cache write skipped: %v", err), SeverityError)
	}
}

// entryStale reports whether entry must be evicted and why. An entry is
// stale when expired, when its timestamp cannot be parsed, or when its
// checksum no longer matches the payload.
func (s *Store) entryStale(entry cacheEntryDTO) (string, bool) {
	storedAt, err := time.Parse(time.RFC3339, entry.Timestamp)
	if err != nil {
		return "unparsable timestamp", true
	}
	if s.clock.Now().Sub(storedAt) > cacheLifetime {
		return "expired", true
	}
	if entry.Checksum != "" {
		checksum, err := hashutil.HashBytes([]byte(entry.Data), hashutil.HashAlgoBLAKE3)
		if err == nil && checksum != entry.Checksum {
			return string(ErrCauseChecksumMismatch), true
		}
	}
	return "", false
}

func (s *Store) loadSnapshot() (cacheSnapshot, failure.ClassifiedError) {
	raw, err := os.ReadFile(s.cachePath())
	if err != nil {
		if os.IsNotExist(err) {
			return cacheSnapshot{}, nil
		}
		return nil, &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseReadFailure,
		}
	}

	snapshot := cacheSnapshot{}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, &StoreError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}
	return snapshot, nil
}

func (s *Store) persistSnapshot(snapshot cacheSnapshot) failure.ClassifiedError {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return &StoreError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
		}
	}
	if err := fileutil.EnsureDir(s.dataDir); err != nil {
		return &StoreError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseWriteFailure,
		}
	}
	if err := fileutil.WriteFileAtomic(s.cachePath(), data, 0644); err != nil {
		return &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseWriteFailure,
		}
	}
	return nil
}
