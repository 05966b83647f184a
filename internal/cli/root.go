package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/NotACat1/WeatherTerminal/internal/api"
	"github.com/NotACat1/WeatherTerminal/internal/build"
	"github.com/NotACat1/WeatherTerminal/internal/config"
	"github.com/NotACat1/WeatherTerminal/internal/session"
	"github.com/NotACat1/WeatherTerminal/internal/settings"
	"github.com/NotACat1/WeatherTerminal/internal/store"
	"github.com/NotACat1/WeatherTerminal/internal/ui"
	"github.com/NotACat1/WeatherTerminal/pkg/timeutil"
)

var (
	cfgFile string
	dataDir string
	apiKey  string
	units   string
	lang    string
	timeout time.Duration
	baseURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "weatherterminal",
	Short: "Console weather with clothing advice.",
	Long: `WeatherTerminal is an interactive console application that fetches
current conditions and a short-range forecast for a named location,
derives clothing, umbrella and sun-protection recommendations, and
keeps a 30-minute response cache plus usage logs on the local
filesystem.`,
	Version: build.FullVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := InitConfigWithError()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		renderer := ui.NewRenderer(os.Stdout)

		st := store.New(cfg.DataDir(), timeutil.SystemClock{}, renderer)
		st.Init()

		settingsStore := settings.New(filepath.Join(cfg.DataDir(), "config.json"))
		if err := settingsStore.Load(); err != nil {
			st.LogEvent(fmt.Sprintf("settings degraded to defaults: %v", err), store.SeverityWarning)
		}
		if apiKey != "" {
			if err := settingsStore.SetAPIKey(apiKey); err != nil {
				st.LogEvent(fmt.Sprintf("credential not persisted: %v", err), store.SeverityWarning)
			}
		}

		loop := session.NewLoop(os.Stdin, renderer, nil, st, settingsStore, cfg.Lang())
		key := loop.EnsureAPIKey()
		if key == "" {
			fmt.Fprintln(os.Stderr, "Error: an API key is required. Pass --api-key or enter one at the prompt.")
			os.Exit(1)
		}

		client := api.NewOpenWeatherClient(cfg, key, st)
		loop.SetClient(&client)
		loop.Run(context.Background())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "root directory for the cache, logs and usage ledger")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "upstream API credential (persisted for later runs)")
	rootCmd.PersistentFlags().StringVar(&units, "units", "", "measurement units: standard, metric or imperial")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "language code for condition descriptions")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout for upstream requests")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL of the weather API")
}

// InitConfigWithError assembles the runtime config from the config file
// (when given) and CLI flag overrides.
func InitConfigWithError() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return applyFlagOverrides(&cfg).Build()
	}

	return applyFlagOverrides(config.WithDefault()).Build()
}

func applyFlagOverrides(builder *config.Config) *config.Config {
	if dataDir != "" {
		builder = builder.WithDataDir(dataDir)
	}
	if units != "" {
		builder = builder.WithUnits(units)
	}
	if lang != "" {
		builder = builder.WithLang(lang)
	}
	if timeout > 0 {
		builder = builder.WithTimeout(timeout)
	}
	if baseURL != "" {
		builder = builder.WithBaseURL(baseURL)
	}
	return builder
}

// ResetFlags restores all flag variables to their zero values. Tests
// use it to isolate runs.
func ResetFlags() {
	cfgFile = ""
	dataDir = ""
	apiKey = ""
	units = ""
	lang = ""
	timeout = 0
	baseURL = ""
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetDataDirForTest(dir string) {
	dataDir = dir
}

func SetUnitsForTest(u string) {
	units = u
}

func SetLangForTest(l string) {
	lang = l
}

func SetTimeoutForTest(t time.Duration) {
	timeout = t
}

func SetBaseURLForTest(u string) {
	baseURL = u
}
