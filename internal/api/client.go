package api

import (
	"context"

	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

// Client is the upstream weather API boundary. Payloads are returned as
// raw response bodies; parsing is the caller's concern so the cache can
// hold exactly what the upstream sent.
type Client interface {
	FetchCurrent(ctx context.Context, location string) (string, failure.ClassifiedError)
	FetchForecast(ctx context.Context, location string) (string, failure.ClassifiedError)
}
