package ui

// iconGlyphs maps upstream icon codes to a console glyph. Day and night
// variants share a glyph where the console has nothing better.
var iconGlyphs = map[string]string{
	"01d": "☀",
	"01n": "🌙",
	"02d": "⛅",
	"02n": "⛅",
	"03d": "☁",
	"03n": "☁",
	"04d": "☁",
	"04n": "☁",
	"09d": "🌧",
	"09n": "🌧",
	"10d": "🌦",
	"10n": "🌧",
	"11d": "⛈",
	"11n": "⛈",
	"13d": "❄",
	"13n": "❄",
	"50d": "🌫",
	"50n": "🌫",
}

// Glyph returns the console glyph for an icon code, or empty when the
// code is unknown.
func Glyph(icon string) string {
	return iconGlyphs[icon]
}

// menuText is the interactive menu, rendered before every prompt.
const menuText = `
==== WeatherTerminal ====
 1. Current weather
 2. Help
 3. Usage statistics
 4. Exit
`

// helpText explains the location prompt, including the
// "location,country-code" disambiguation form that is passed through
// verbatim to the upstream API.
const helpText = `
WeatherTerminal fetches current conditions and a short-range forecast
for a named location.

Enter a city name at the prompt, e.g. "London". If the name is
ambiguous, append an ISO country code: "London,CA". Responses are
cached for 30 minutes; forecasts always hit the upstream API.
`
