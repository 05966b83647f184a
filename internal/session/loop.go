package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/NotACat1/WeatherTerminal/internal/api"
	"github.com/NotACat1/WeatherTerminal/internal/recommend"
	"github.com/NotACat1/WeatherTerminal/internal/settings"
	"github.com/NotACat1/WeatherTerminal/internal/store"
	"github.com/NotACat1/WeatherTerminal/internal/ui"
	"github.com/NotACat1/WeatherTerminal/internal/weather"
)

/*
Loop is the sole control-flow authority of a session.

- It owns the read-decide-act cycle: render menu, read a choice, act.
- Collaborators (client, store, renderer) detect and classify failures
  but never decide whether the session continues.
- A single recover at the top level turns an unanticipated panic into
  an ERROR log line and a graceful shutdown; nothing below it may
  terminate the process.
*/

type Loop struct {
	in       *bufio.Scanner
	renderer *ui.Renderer
	client   api.Client
	store    *store.Store
	settings *settings.Store
	lang     string
}

func NewLoop(
	in io.Reader,
	renderer *ui.Renderer,
	client api.Client,
	st *store.Store,
	settingsStore *settings.Store,
	lang string,
) *Loop {
	return &Loop{
		in:       bufio.NewScanner(in),
		renderer: renderer,
		client:   client,
		store:    st,
		settings: settingsStore,
		lang:     lang,
	}
}

// SetClient installs the upstream client. The loop is constructed
// before the credential is known, so the client arrives after
// EnsureAPIKey; constructing a second loop instead would wrap the
// input in a fresh scanner and drop whatever the first one had
// already buffered.
func (l *Loop) SetClient(client api.Client) {
	l.client = client
}

// Run drives the interactive loop until the user exits or input ends.
func (l *Loop) Run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			l.store.LogEvent(fmt.Sprintf("unanticipated error: %v", rec), store.SeverityError)
			l.renderer.Failure("Something went wrong; see the log file for details.")
		}
	}()

	l.store.LogEvent("session started", store.SeverityInfo)

	for {
		l.renderer.Menu()
		choice, ok := l.readLine()
		if !ok {
			break
		}

		switch strings.TrimSpace(choice) {
		case "1":
			l.handleWeather(ctx)
		case "2":
			l.renderer.Help()
		case "3":
			count, last := l.store.UsageSummary()
			l.renderer.UsageStats(count, last)
		case "4":
			l.store.LogEvent("session ended", store.SeverityInfo)
			l.renderer.Message("Bye.")
			return
		default:
			l.store.LogEvent(fmt.Sprintf("invalid menu choice %q", choice), store.SeverityWarning)
		}
	}
}

// EnsureAPIKey prompts for and persists a credential when none is
// stored yet. Returns the credential to use for this session.
func (l *Loop) EnsureAPIKey() string {
	if key := l.settings.APIKey(); key != "" {
		return key
	}

	l.renderer.Prompt("Enter your API key")
	key, ok := l.readLine()
	if !ok {
		return ""
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	if err := l.settings.SetAPIKey(key); err != nil {
		l.store.LogEvent(fmt.Sprintf("credential not persisted: %v", err), store.SeverityWarning)
	}
	return key
}

func (l *Loop) handleWeather(ctx context.Context) {
	l.renderer.Prompt("Location")
	location, ok := l.readLine()
	if !ok {
		return
	}
	location = strings.TrimSpace(location)
	if location == "" {
		l.renderer.Message("Location cannot be empty.")
		return
	}

	l.store.LogUsage(location)

	payload, err := l.client.FetchCurrent(ctx, location)
	if err != nil {
		// Already logged as ERROR by the client.
		l.renderer.Failure("Could not fetch the weather. Please try again later.")
		return
	}

	current, parseErr := weather.ParseCurrent([]byte(payload))
	if parseErr != nil {
		l.store.LogEvent(fmt.Sprintf("current weather payload unusable: %v", parseErr), store.SeverityError)
		l.renderer.Failure("Could not fetch the weather. Please try again later.")
		return
	}

	l.renderer.WeatherCard(current)
	l.renderer.AdviceBlock(recommend.For(current.Main.Temp, current.Description(), l.lang))

	l.renderer.Prompt("Show forecast? (y/n)")
	answer, ok := l.readLine()
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return
	}
	l.handleForecast(ctx, location)
}

func (l *Loop) handleForecast(ctx context.Context, location string) {
	payload, err := l.client.FetchForecast(ctx, location)
	if err != nil {
		l.renderer.Failure("Could not fetch the forecast. Please try again later.")
		return
	}

	forecast, parseErr := weather.ParseForecast([]byte(payload))
	if parseErr != nil {
		l.store.LogEvent(fmt.Sprintf("forecast payload unusable: %v", parseErr), store.SeverityError)
		l.renderer.Failure("Could not fetch the forecast. Please try again later.")
		return
	}

	l.renderer.ForecastTable(forecast)
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}
