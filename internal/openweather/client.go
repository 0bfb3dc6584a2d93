package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/IllyaMoore/Weather-CLI/internal/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches current weather from the OpenWeatherMap REST API. Every
// call is a single best-effort request: no retries, no backoff.
type Client struct {
	// BaseURL points at the provider; tests swap in an httptest server.
	BaseURL string

	http   *http.Client
	apiKey string
	units  string
}

func NewClient(apiKey, units string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		units:   units,
	}
}

// Current requests the weather for one city and returns a fully populated
// report or a typed error (RequestError, StatusError, DecodeError).
func (c *Client) Current(ctx context.Context, city string) (*models.Report, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	q.Set("lang", "en")
	reqURL := c.BaseURL + "/weather?" + q.Encode()
	maskedURL := redactedURL(c.BaseURL, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Err: maskURLError(err, maskedURL)}
	}

	log.Printf("GET %s", maskedURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Err: maskURLError(err, maskedURL)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	log.Printf("openweathermap response: %s", body)

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errResp)
		return nil, &StatusError{City: city, StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	var cur currentResponse
	if err := json.Unmarshal(body, &cur); err != nil {
		return nil, &DecodeError{Reason: "malformed JSON", Err: err}
	}

	return buildReport(&cur, city, c.units)
}

// redactedURL rebuilds the request URL with the appid value overwritten.
// Neither logs nor error messages may carry the key, raw or percent-encoded.
func redactedURL(base string, q url.Values) string {
	masked := url.Values{}
	for k, v := range q {
		masked[k] = v
	}
	masked.Set("appid", "REDACTED")
	return base + "/weather?" + masked.Encode()
}

// maskURLError overwrites the request URL a transport error embeds.
func maskURLError(err error, masked string) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = masked
	}
	return err
}
