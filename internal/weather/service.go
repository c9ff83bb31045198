package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/weather-search-history/internal/search"
)

const (
	// MsgRequired is shown when the city field is left empty.
	MsgRequired = "Campo obligatorio"
	// MsgProviderFallback is shown when the provider gives no usable message.
	MsgProviderFallback = "Error al obtener datos del clima"

	iconURLFormat = "https://openweathermap.org/img/wn/%s.png"
)

// Service turns a city name into a search record using a Provider.
type Service struct {
	provider Provider
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Lookup fetches the current weather for cityName and maps it into a
// record dated at the client. An empty name fails with a
// *search.ValidationError before any request is made; provider failures
// come back as *search.ProviderError. Nothing is retried.
func (s *Service) Lookup(ctx context.Context, cityName string) (search.Record, error) {
	city := strings.TrimSpace(cityName)
	if city == "" {
		return search.Record{}, &search.ValidationError{Message: MsgRequired}
	}

	obs, err := s.provider.Fetch(ctx, city)
	if err != nil {
		return search.Record{}, err
	}

	return search.Record{
		City:          obs.City,
		Country:       obs.Country,
		Temp:          search.FormatTemperature(obs.TempC),
		Condition:     TranslateCondition(obs.Main),
		ConditionText: obs.Description,
		Icon:          IconURL(obs.IconCode),
		Date:          s.now(),
	}, nil
}

// IconURL returns the provider-hosted image for an icon code.
func IconURL(code string) string {
	return fmt.Sprintf(iconURLFormat, code)
}
