package settings

import (
	"fmt"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

type SettingsErrorCause string

const (
	ErrCauseReadFailure  SettingsErrorCause = "read failed"
	ErrCauseParseFailure SettingsErrorCause = "parse failed"
	ErrCauseWriteFailure SettingsErrorCause = "write failed"
)

type SettingsError struct {
	Message string
	Cause   SettingsErrorCause
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("settings error: %s: %s", e.Cause, e.Message)
}

func (e *SettingsError) Severity() failure.Severity {
	// The store always degrades to a default record.
	return failure.SeverityRecoverable
}
