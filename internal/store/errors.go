package store

import (
	"fmt"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

type StoreErrorCause string

const (
	ErrCauseReadFailure      StoreErrorCause = "read failed"
	ErrCauseWriteFailure     StoreErrorCause = "write failed"
	ErrCauseParseFailure     StoreErrorCause = "parse failed"
	ErrCauseChecksumMismatch StoreErrorCause = "checksum mismatch"
)

// StoreError classifies persistence failures. Every failure is caught
// at the point of use and degrades to a cache miss or a skipped log
// line; the error type exists so the degradation can be logged with a
// stable cause.
type StoreError struct {
	Message   string
	Retryable bool
	Cause     StoreErrorCause
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s: %s", e.Cause, e.Message)
}

func (e *StoreError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
