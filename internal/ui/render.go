package ui

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-search-history/internal/search"
)

const (
	// LoadingText is shown while a lookup is in flight.
	LoadingText = "Cargando..."
	poweredBy   = "Powered by: OpenWeatherMap API (https://openweathermap.org)"
)

var titleCaser = cases.Title(language.English)

// Render writes the inline error, if any, followed by the displayed result.
func Render(w io.Writer, v View) {
	if v.Loading {
		fmt.Fprintln(w, LoadingText)
		return
	}
	if v.Err != "" {
		fmt.Fprintf(w, "Ciudad: %s\n", v.Err)
	}
	if v.Result != nil {
		RenderResult(w, *v.Result)
	}
}

// RenderResult prints one record the way the result panel shows it.
func RenderResult(w io.Writer, rec search.Record) {
	header := fmt.Sprintf("%s, %s", rec.City, rec.Country)
	fmt.Fprintf(w, "%s\n", header)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len([]rune(header))))
	fmt.Fprintf(w, "Temperatura: %s\n", rec.Temp.Label())
	fmt.Fprintf(w, "Condición:   %s\n", rec.Condition)
	if rec.ConditionText != "" {
		fmt.Fprintf(w, "Detalle:     %s\n", titleCaser.String(rec.ConditionText))
	}
	fmt.Fprintf(w, "Icono:       %s\n", rec.Icon)
	fmt.Fprintln(w)
	fmt.Fprintln(w, poweredBy)
}

// RenderHistory prints records one per line, in the order given.
func RenderHistory(w io.Writer, title string, recs []search.Record) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(recs))
	if len(recs) == 0 {
		fmt.Fprintln(w, "  (vacío)")
		return
	}
	for _, rec := range recs {
		fmt.Fprintf(w, "  %s  %-20s %-3s %10s  %s\n",
			rec.Date.Local().Format("2006-01-02 15:04:05"),
			rec.City,
			rec.Country,
			rec.Temp.Label(),
			rec.Condition)
	}
}
