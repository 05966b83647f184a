package weather

import (
	"fmt"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

type ParseErrorCause string

const (
	ErrCauseMalformedDocument ParseErrorCause = "malformed document"
	ErrCauseMissingField      ParseErrorCause = "missing field"
)

type ParseError struct {
	Message string
	Cause   ParseErrorCause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %s", e.Cause, e.Message)
}

func (e *ParseError) Severity() failure.Severity {
	// A malformed body cannot be repaired by the caller.
	return failure.SeverityFatal
}
