package api

import (
	"fmt"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

type APIErrorCause string

const (
	ErrCauseNetworkFailure        APIErrorCause = "network issues"
	ErrCauseInvalidCredential     APIErrorCause = "invalid credential"
	ErrCauseLocationNotFound      APIErrorCause = "location not found"
	ErrCauseServerError           APIErrorCause = "5xx"
	ErrCauseUnexpectedStatus      APIErrorCause = "unexpected status"
	ErrCauseReadResponseBodyError APIErrorCause = "failed to read response body"
)

type APIError struct {
	Message string
	Cause   APIErrorCause
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s: %s", e.Cause, e.Message)
}

func (e *APIError) Severity() failure.Severity {
	// Upstream failures are never fatal to the session; the user is
	// told and the loop continues.
	return failure.SeverityRecoverable
}
