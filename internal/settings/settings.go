package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
	"github.com/NotACat1/WeatherTerminal/pkg/fileutil"
)

// Store holds the persisted API credential. The record lives in a
// single JSON file; a missing file is created with an empty credential,
// an unreadable one degrades to the same default.
type Store struct {
	path   string
	record record
}

type record struct {
	APIKey string `json:"ApiKey"`
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted record, creating it with defaults when the
// file is absent. Read or parse failures degrade to the default record
// and are reported to the caller so they can be logged.
func (s *Store) Load() failure.ClassifiedError {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.record = record{}
			return s.persist()
		}
		s.record = record{}
		return &SettingsError{
			Message: err.Error(),
			Cause:   ErrCauseReadFailure,
		}
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.record = record{}
		return &SettingsError{
			Message: err.Error(),
			Cause:   ErrCauseParseFailure,
		}
	}

	s.record = rec
	return nil
}

// APIKey returns the loaded credential, empty when none is stored.
func (s *Store) APIKey() string {
	return s.record.APIKey
}

// SetAPIKey updates the credential and persists immediately.
func (s *Store) SetAPIKey(key string) failure.ClassifiedError {
	s.record.APIKey = key
	return s.persist()
}

func (s *Store) persist() failure.ClassifiedError {
	if err := fileutil.EnsureDir(filepath.Dir(s.path)); err != nil {
		return &SettingsError{
			Message: fmt.Sprintf("%v", err),
			Cause:   ErrCauseWriteFailure,
		}
	}

	data, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return &SettingsError{
			Message: err.Error(),
			Cause:   ErrCauseWriteFailure,
		}
	}

	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return &SettingsError{
			Message: fmt.Sprintf("%v", err),
			Cause:   ErrCauseWriteFailure,
		}
	}
	return nil
}
