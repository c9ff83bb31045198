package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-search-history/internal/weather"
)

// DefaultOpenWeatherURL is the current-weather endpoint of OpenWeatherMap.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherProvider creates a provider hitting baseURL, or the public
// endpoint when baseURL is empty.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Fetch issues a single GET ?appid=<key>&units=metric&q=<city>. Failures are
// returned as *search.ProviderError and never retried.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, city string) (weather.Observation, error) {
	if p.client == nil {
		return weather.Observation{}, transportError(errNoHTTPClient)
	}
	if p.apiKey == "" {
		return weather.Observation{}, transportError(errNoAPIKey)
	}

	u, err := url.Parse(p.baseURL)
	if err != nil {
		return weather.Observation{}, transportError(fmt.Errorf("parse base url: %w", err))
	}
	values := u.Query()
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	values.Set("q", city)
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return weather.Observation{}, transportError(fmt.Errorf("create request: %w", err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return weather.Observation{}, transportError(fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return weather.Observation{}, statusError(resp)
	}

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, transportError(fmt.Errorf("decode response: %w", err))
	}
	if len(payload.Weather) == 0 {
		return weather.Observation{}, transportError(errNoConditions)
	}

	current := payload.Weather[0]
	return weather.Observation{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		TempC:       payload.Main.Temp,
		Main:        current.Main,
		Description: current.Description,
		IconCode:    current.Icon,
	}, nil
}
