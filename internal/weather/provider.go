package weather

import "context"

// Provider abstracts the current-weather source queried by city name.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, city string) (Observation, error)
}
