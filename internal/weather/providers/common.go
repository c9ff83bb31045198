package providers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/i474232898/weather-search-history/internal/common"
	"github.com/i474232898/weather-search-history/internal/search"
	"github.com/i474232898/weather-search-history/internal/weather"
)

var (
	errNoHTTPClient = errors.New("http client not configured")
	errNoAPIKey     = errors.New("api key is not configured")
	errNoConditions = errors.New("response has no weather conditions")
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// apiError is the error body most providers return, e.g.
// {"cod":"404","message":"city not found"}.
type apiError struct {
	Message string `json:"message"`
}

// statusError builds a ProviderError from a non-2xx response, preferring the
// provider's own message.
func statusError(resp *http.Response) *search.ProviderError {
	var body apiError
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		body.Message = ""
	}

	return &search.ProviderError{
		StatusCode: resp.StatusCode,
		Message:    common.FirstNonEmpty(body.Message, weather.MsgProviderFallback),
	}
}

// transportError wraps a failure that produced no usable response.
func transportError(err error) *search.ProviderError {
	return &search.ProviderError{
		Message: weather.MsgProviderFallback,
		Err:     err,
	}
}
