package weather

import (
	"encoding/json"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

// ParseCurrent decodes a current-conditions payload. A document without
// a location name is treated as malformed: nothing downstream can
// render it.
func ParseCurrent(payload []byte) (Current, failure.ClassifiedError) {
	var current Current
	if err := json.Unmarshal(payload, &current); err != nil {
		return Current{}, &ParseError{
			Message: err.Error(),
			Cause:   ErrCauseMalformedDocument,
		}
	}
	if current.Name == "" {
		return Current{}, &ParseError{
			Message: "document has no location name",
			Cause:   ErrCauseMissingField,
		}
	}
	return current, nil
}

// ParseForecast decodes a forecast payload. An empty point list is
// malformed for the same reason.
func ParseForecast(payload []byte) (Forecast, failure.ClassifiedError) {
	var forecast Forecast
	if err := json.Unmarshal(payload, &forecast); err != nil {
		return Forecast{}, &ParseError{
			Message: err.Error(),
			Cause:   ErrCauseMalformedDocument,
		}
	}
	if len(forecast.Points) == 0 {
		return Forecast{}, &ParseError{
			Message: "document has no forecast points",
			Cause:   ErrCauseMissingField,
		}
	}
	return forecast, nil
}
