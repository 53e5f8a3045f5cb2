package types

// Query is a single lookup request. It is built per lookup and never stored.
type Query struct {
	City   string
	APIKey string
}

// Reading is the normalized result of a successful lookup.
type Reading struct {
	TemperatureCelsius float64 `json:"temperature"`
	HumidityPercent    int     `json:"humidity"`
	Conditions         string  `json:"description"`
}
