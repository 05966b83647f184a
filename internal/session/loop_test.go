package session_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/NotACat1/WeatherTerminal/internal/api"
	"github.com/NotACat1/WeatherTerminal/internal/config"
	"github.com/NotACat1/WeatherTerminal/internal/session"
	"github.com/NotACat1/WeatherTerminal/internal/settings"
	"github.com/NotACat1/WeatherTerminal/internal/store"
	"github.com/NotACat1/WeatherTerminal/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fixture struct {
	loop          *session.Loop
	out           *bytes.Buffer
	dataDir       string
	cfg           config.Config
	store         *store.Store
	settings      *settings.Store
	currentCalls  *int
	forecastCalls *int
}

// newFixture wires a full session against a canned upstream, driven by
// scripted console input.
func newFixture(t *testing.T, input string) fixture {
	t.Helper()
	color.NoColor = true

	currentCalls := 0
	forecastCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			currentCalls++
			w.Write([]byte(`{"name":"London","main":{"temp":12.3,"humidity":81},"wind":{"speed":4.6},"weather":[{"description":"light rain","icon":"10d"}]}`))
		case "/forecast":
			forecastCalls++
			w.Write([]byte(`{"city":{"name":"London"},"list":[{"dt_txt":"2025-03-14 12:00:00","main":{"temp":11,"humidity":80},"weather":[{"description":"overcast clouds","icon":"04d"}]}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	dataDir := t.TempDir()
	cfg, err := config.WithDefault().
		WithDataDir(dataDir).
		WithBaseURL(server.URL).
		Build()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	renderer := ui.NewRenderer(out)

	st := store.New(dataDir, &fakeClock{now: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)}, renderer)
	st.Init()

	settingsStore := settings.New(filepath.Join(dataDir, "config.json"))
	require.NoError(t, settingsStore.Load())
	require.NoError(t, settingsStore.SetAPIKey("test-key"))

	client := api.NewOpenWeatherClient(cfg, settingsStore.APIKey(), st)
	loop := session.NewLoop(strings.NewReader(input), renderer, &client, st, settingsStore, cfg.Lang())

	return fixture{
		loop:          loop,
		out:           out,
		dataDir:       dataDir,
		cfg:           cfg,
		store:         st,
		settings:      settingsStore,
		currentCalls:  &currentCalls,
		forecastCalls: &forecastCalls,
	}
}

func TestSession_WeatherForLondon(t *testing.T) {
	f := newFixture(t, "1\nLondon\nn\n4\n")

	f.loop.Run(context.Background())

	out := f.out.String()
	assert.Contains(t, out, "London")
	assert.Contains(t, out, "light rain")
	assert.Contains(t, out, "light jacket")
	assert.Contains(t, out, "umbrella")

	ledger, err := os.ReadFile(filepath.Join(f.dataDir, "usage.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(ledger), "Request for: London")
}

func TestSession_SecondRequestServedFromCache(t *testing.T) {
	f := newFixture(t, "1\nLondon\nn\n1\nlondon\nn\n4\n")

	f.loop.Run(context.Background())

	assert.Equal(t, 1, *f.currentCalls, "second request within the lifetime must not hit the upstream")
	assert.Equal(t, 2, strings.Count(f.out.String(), "Temperature"), "both requests render a card")
}

func TestSession_ForecastAlwaysHitsUpstream(t *testing.T) {
	f := newFixture(t, "1\nLondon\ny\n1\nLondon\ny\n4\n")

	f.loop.Run(context.Background())

	assert.Equal(t, 1, *f.currentCalls)
	assert.Equal(t, 2, *f.forecastCalls, "forecast calls are never cached")
	assert.Equal(t, 2, strings.Count(f.out.String(), "Forecast for London"))
}

func TestSession_BlankLocation(t *testing.T) {
	f := newFixture(t, "1\n   \n4\n")

	f.loop.Run(context.Background())

	assert.Contains(t, f.out.String(), "Location cannot be empty.")
	assert.Zero(t, *f.currentCalls, "no upstream call for blank input")

	ledger, err := os.ReadFile(filepath.Join(f.dataDir, "usage.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(ledger), "Request for:")
}

func TestSession_InvalidMenuChoiceWarns(t *testing.T) {
	f := newFixture(t, "9\n4\n")

	f.loop.Run(context.Background())

	assert.Contains(t, f.out.String(), "[WARNING]")

	logs, err := os.ReadFile(filepath.Join(f.dataDir, "logs", "log_2025-03-14.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), `[WARNING] invalid menu choice "9"`)
}

func TestSession_UsageStatistics(t *testing.T) {
	f := newFixture(t, "1\nLondon\nn\n3\n4\n")

	f.loop.Run(context.Background())

	out := f.out.String()
	assert.Contains(t, out, "Requests made: 1")
	assert.Contains(t, out, "Request for: London")
}

func TestSession_EndOfInputTerminates(t *testing.T) {
	f := newFixture(t, "")

	// Must return rather than spin when input ends.
	f.loop.Run(context.Background())

	assert.Contains(t, f.out.String(), "WeatherTerminal")
}

func TestEnsureAPIKey_PromptsAndPersists(t *testing.T) {
	color.NoColor = true
	settingsStore := settings.New(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, settingsStore.Load())

	out := &bytes.Buffer{}
	renderer := ui.NewRenderer(out)
	st := store.New(t.TempDir(), &fakeClock{now: time.Now()}, renderer)
	loop := session.NewLoop(strings.NewReader("fresh-key\n"), renderer, nil, st, settingsStore, "en")

	key := loop.EnsureAPIKey()
	assert.Equal(t, "fresh-key", key)
	assert.Equal(t, "fresh-key", settingsStore.APIKey())
	assert.Contains(t, out.String(), "API key")
}

// A first run has no stored credential: the same reader must carry the
// key line and then the menu input. The client is only constructable
// after the key is known, so it is injected into the existing loop;
// wrapping the input again would lose what the scanner read ahead.
func TestSession_FirstRunKeyPromptThenMenu(t *testing.T) {
	f := newFixture(t, "my-key\n1\nLondon\nn\n4\n")
	require.NoError(t, f.settings.SetAPIKey(""))

	key := f.loop.EnsureAPIKey()
	require.Equal(t, "my-key", key)

	client := api.NewOpenWeatherClient(f.cfg, key, f.store)
	f.loop.SetClient(&client)
	f.loop.Run(context.Background())

	assert.Equal(t, 1, *f.currentCalls, "menu input after the key line must still drive the session")
	assert.Contains(t, f.out.String(), "Temperature")
	assert.Equal(t, "my-key", f.settings.APIKey())
}

func TestEnsureAPIKey_UsesStoredCredential(t *testing.T) {
	settingsStore := settings.New(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, settingsStore.Load())
	require.NoError(t, settingsStore.SetAPIKey("stored"))

	out := &bytes.Buffer{}
	renderer := ui.NewRenderer(out)
	st := store.New(t.TempDir(), &fakeClock{now: time.Now()}, renderer)
	loop := session.NewLoop(strings.NewReader(""), renderer, nil, st, settingsStore, "en")

	assert.Equal(t, "stored", loop.EnsureAPIKey())
	assert.Empty(t, out.String(), "no prompt when a credential is stored")
}
