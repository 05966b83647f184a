package weather

// Upstream payload model
//
// Field names follow the upstream JSON documents: the current-conditions
// endpoint returns a single observation, the forecast endpoint a list of
// three-hourly points under "list".

// Condition is one weather descriptor attached to an observation.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Observation holds the measured values shared by current conditions
// and forecast points.
type Observation struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

// Wind carries the wind measurements the card renders.
type Wind struct {
	Speed float64 `json:"speed"`
}

// Current is the parsed current-conditions document.
type Current struct {
	Name       string      `json:"name"`
	Main       Observation `json:"main"`
	Wind       Wind        `json:"wind"`
	Conditions []Condition `json:"weather"`
}

// Description returns the first condition descriptor, or empty when the
// upstream sent none.
func (c Current) Description() string {
	if len(c.Conditions) == 0 {
		return ""
	}
	return c.Conditions[0].Description
}

// Icon returns the first condition's icon code, or empty.
func (c Current) Icon() string {
	if len(c.Conditions) == 0 {
		return ""
	}
	return c.Conditions[0].Icon
}

// ForecastPoint is one three-hourly forecast entry.
type ForecastPoint struct {
	Stamp      string      `json:"dt_txt"`
	Main       Observation `json:"main"`
	Conditions []Condition `json:"weather"`
}

// Description returns the point's first condition descriptor, or empty.
func (p ForecastPoint) Description() string {
	if len(p.Conditions) == 0 {
		return ""
	}
	return p.Conditions[0].Description
}

// Forecast is the parsed forecast document.
type Forecast struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	Points []ForecastPoint `json:"list"`
}
