package weather

// Observation is the subset of a provider's current-weather response the
// client needs to build a search record.
type Observation struct {
	City        string
	Country     string
	TempC       float64
	Main        string // condition keyword, e.g. "Clouds"
	Description string // free text, e.g. "overcast clouds"
	IconCode    string // e.g. "04d"
}
