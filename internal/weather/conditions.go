package weather

// conditionLabels maps the provider's weather[0].main keywords to short
// Spanish labels shown to the user.
var conditionLabels = map[string]string{
	"Clear":        "Despejado",
	"Clouds":       "Nublado",
	"Rain":         "Lluvia",
	"Drizzle":      "Llovizna",
	"Thunderstorm": "Tormenta",
	"Snow":         "Nieve",
	"Mist":         "Niebla",
	"Smoke":        "Humo",
	"Haze":         "Neblina",
	"Dust":         "Polvo",
	"Fog":          "Niebla",
	"Sand":         "Arena",
	"Ash":          "Ceniza",
	"Squall":       "Chubasco",
	"Tornado":      "Tornado",
}

// TranslateCondition returns the localized label for a provider condition
// keyword. Unknown keywords are returned unchanged.
func TranslateCondition(keyword string) string {
	if label, ok := conditionLabels[keyword]; ok {
		return label
	}
	return keyword
}

// Conditions returns a copy of the translation table.
func Conditions() map[string]string {
	out := make(map[string]string, len(conditionLabels))
	for k, v := range conditionLabels {
		out[k] = v
	}
	return out
}
