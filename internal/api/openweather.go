package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/NotACat1/WeatherTerminal/internal/config"
	"github.com/NotACat1/WeatherTerminal/internal/store"
	"github.com/NotACat1/WeatherTerminal/pkg/failure"
)

/*
Responsibilities

- Build request URLs for the current-conditions and forecast endpoints
- Issue one HTTP GET per call, classify the response
- Consult the cache-and-log store around the current-conditions call

Fetch semantics

- Current conditions are served from the cache when fresh; a successful
  upstream fetch is stored back
- Forecast calls are never cached and always hit the upstream
- Non-success status and transport failures yield an APIError and a
  logged ERROR; there is no retry

The client never parses payloads; it returns the raw body.
*/

type OpenWeatherClient struct {
	store      *store.Store
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	lang       string
}

func NewOpenWeatherClient(cfg config.Config, apiKey string, st *store.Store) OpenWeatherClient {
	return OpenWeatherClient{
		store:      st,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL(),
		apiKey:     apiKey,
		units:      cfg.Units(),
		lang:       cfg.Lang(),
	}
}

// FetchCurrent returns the current-conditions payload for location,
// serving a fresh cached copy when one exists and storing the response
// on a successful upstream fetch.
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, location string) (string, failure.ClassifiedError) {
	if payload, ok := c.store.GetCached(location); ok {
		c.store.LogEvent(fmt.Sprintf("cache hit for %q", location), store.SeverityDebug)
		return payload, nil
	}

	payload, err := c.performFetch(ctx, "/weather", location)
	if err != nil {
		c.store.LogEvent(fmt.Sprintf("current weather fetch for %q failed: %v", location, err), store.SeverityError)
		return "", err
	}

	c.store.PutCached(location, payload)
	c.store.LogEvent(fmt.Sprintf("fetched current weather for %q", location), store.SeverityInfo)
	return payload, nil
}

// FetchForecast returns the forecast payload for location. Forecasts
// are never cached.
func (c *OpenWeatherClient) FetchForecast(ctx context.Context, location string) (string, failure.ClassifiedError) {
	payload, err := c.performFetch(ctx, "/forecast", location)
	if err != nil {
		c.store.LogEvent(fmt.Sprintf("forecast fetch for %q failed: %v", location, err), store.SeverityError)
		return "", err
	}

	c.store.LogEvent(fmt.Sprintf("fetched forecast for %q", location), store.SeverityInfo)
	return payload, nil
}

func (c *OpenWeatherClient) endpoint(path string, location string) string {
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)
	query.Set("units", c.units)
	query.Set("lang", c.lang)
	return c.baseURL + path + "?" + query.Encode()
}

func (c *OpenWeatherClient) performFetch(ctx context.Context, path string, location string) (string, failure.ClassifiedError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, location), nil)
	if err != nil {
		return "", &APIError{
			Message: fmt.Sprintf("failed to create request: %v", err),
			Cause:   ErrCauseNetworkFailure,
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{
			Message: fmt.Sprintf("request failed: %v", err),
			Cause:   ErrCauseNetworkFailure,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", &APIError{
			Message: "credential rejected (401)",
			Cause:   ErrCauseInvalidCredential,
		}

	case resp.StatusCode == http.StatusNotFound:
		return "", &APIError{
			Message: fmt.Sprintf("location %q not found (404)", location),
			Cause:   ErrCauseLocationNotFound,
		}

	case resp.StatusCode >= 500:
		return "", &APIError{
			Message: fmt.Sprintf("server error: %d", resp.StatusCode),
			Cause:   ErrCauseServerError,
		}

	case resp.StatusCode != http.StatusOK:
		return "", &APIError{
			Message: fmt.Sprintf("unexpected status: %d", resp.StatusCode),
			Cause:   ErrCauseUnexpectedStatus,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Cause:   ErrCauseReadResponseBodyError,
		}
	}

	return string(body), nil
}
