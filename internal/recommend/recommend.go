package recommend

import "strings"

/*
Recommendation rules

- Clothing tier is a pure function of temperature against fixed
  thresholds
- Umbrella advice keys on the condition description containing the
  configured language's word for rain
- Sun protection is advised above 25°C

The functions keep no state; the caller decides what to render.
*/

// Advice is the derived recommendation block for one observation.
type Advice struct {
	Clothing      string
	Umbrella      bool
	SunProtection bool
}

// rainWords maps an upstream language code to the word the condition
// description carries when it is raining. Descriptions arrive localized
// to the language requested from the upstream API.
var rainWords = map[string]string{
	"en": "rain",
	"ru": "дождь",
}

// For derives the full recommendation block for a temperature (°C), a
// localized condition description and the language the description was
// requested in.
func For(tempC float64, description string, lang string) Advice {
	return Advice{
		Clothing:      Clothing(tempC),
		Umbrella:      NeedsUmbrella(description, lang),
		SunProtection: NeedsSunProtection(tempC),
	}
}

// Clothing returns the clothing tier for a temperature in °C.
func Clothing(tempC float64) string {
	switch {
	case tempC < 0:
		return "Dress very warmly: thermal layers, heavy coat, hat and gloves."
	case tempC < 10:
		return "Wear a warm coat and a hat."
	case tempC < 20:
		return "A light jacket should be enough."
	case tempC < 25:
		return "T-shirt weather, but take a light layer."
	default:
		return "Light clothing; it is warm out."
	}
}

// NeedsUmbrella reports whether the description mentions rain in the
// given language. Unknown languages fall back to English.
func NeedsUmbrella(description string, lang string) bool {
	word, ok := rainWords[lang]
	if !ok {
		word = rainWords["en"]
	}
	return strings.Contains(strings.ToLower(description), word)
}

// NeedsSunProtection reports whether sun protection is advised.
func NeedsSunProtection(tempC float64) bool {
	return tempC > 25
}
