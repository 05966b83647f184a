package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/NotACat1/WeatherTerminal/internal/recommend"
	"github.com/NotACat1/WeatherTerminal/internal/store"
	"github.com/NotACat1/WeatherTerminal/internal/weather"
)

/*
Responsibilities

- Render the menu, weather card, forecast table and recommendation
  block onto a writer
- Surface WARNING and ERROR log lines with visual emphasis (the
  renderer is the store's echo sink)

The renderer keeps no state between renders.
*/

type Renderer struct {
	out io.Writer

	heading *color.Color
	warn    *color.Color
	fail    *color.Color
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
	}
}

// Echo implements store.EchoSink. The store only forwards WARNING and
// ERROR lines here.
func (r *Renderer) Echo(severity store.Severity, line string) {
	switch severity {
	case store.SeverityError:
		fmt.Fprintf(r.out, "%s %s\n", r.fail.Sprint("[ERROR]"), line)
	default:
		fmt.Fprintf(r.out, "%s %s\n", r.warn.Sprint("[WARNING]"), line)
	}
}

func (r *Renderer) Menu() {
	fmt.Fprint(r.out, menuText)
	fmt.Fprint(r.out, "> ")
}

func (r *Renderer) Help() {
	fmt.Fprint(r.out, helpText)
}

func (r *Renderer) Prompt(label string) {
	fmt.Fprintf(r.out, "%s: ", label)
}

// Message prints a plain informational line.
func (r *Renderer) Message(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Failure prints a generic failure line with emphasis. Details live in
// the log file; the user gets a short message.
func (r *Renderer) Failure(message string) {
	fmt.Fprintf(r.out, "%s %s\n", r.fail.Sprint("✗"), message)
}

// WeatherCard renders the parsed current conditions.
func (r *Renderer) WeatherCard(current weather.Current) {
	title := current.Name
	if glyph := Glyph(current.Icon()); glyph != "" {
		title = glyph + "  " + title
	}
	r.heading.Fprintf(r.out, "\n%s\n", title)
	if desc := current.Description(); desc != "" {
		fmt.Fprintf(r.out, "  %s\n", desc)
	}
	fmt.Fprintf(r.out, "  Temperature: %.1f°\n", current.Main.Temp)
	fmt.Fprintf(r.out, "  Humidity:    %d%%\n", current.Main.Humidity)
	fmt.Fprintf(r.out, "  Wind:        %.1f m/s\n", current.Wind.Speed)
}

// AdviceBlock renders the derived recommendations under the card.
func (r *Renderer) AdviceBlock(advice recommend.Advice) {
	fmt.Fprintf(r.out, "\n  %s\n", advice.Clothing)
	if advice.Umbrella {
		fmt.Fprintln(r.out, "  Take an umbrella.")
	}
	if advice.SunProtection {
		fmt.Fprintln(r.out, "  Use sun protection.")
	}
}

// ForecastTable renders the forecast points, one line each.
func (r *Renderer) ForecastTable(forecast weather.Forecast) {
	r.heading.Fprintf(r.out, "\nForecast for %s\n", forecast.City.Name)
	for _, point := range forecast.Points {
		fmt.Fprintf(r.out, "  %-19s  %6.1f°  %3d%%  %s\n",
			point.Stamp,
			point.Main.Temp,
			point.Main.Humidity,
			point.Description(),
		)
	}
}

// UsageStats renders the ledger summary.
func (r *Renderer) UsageStats(count int, last string) {
	r.heading.Fprintf(r.out, "\nUsage statistics\n")
	fmt.Fprintf(r.out, "  Requests made: %d\n", count)
	if last != "" {
		fmt.Fprintf(r.out, "  Last request:  %s\n", last)
	}
}
