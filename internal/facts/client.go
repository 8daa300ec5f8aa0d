package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.api-ninjas.com/v1/facts"

// StatusError is returned when the facts API answers with a non-200 status.
// The status code is surfaced in the channel error notification.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("facts API returned status %d", e.StatusCode)
}

// Client is an API client for the api-ninjas facts endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a facts API client. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type factPayload struct {
	Fact string `json:"fact"`
}

// RandomFact fetches one random fact. The API returns a JSON array; the fact
// text of the first element is used.
func (c *Client) RandomFact(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build facts request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call facts API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	var payload []factPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to parse facts response: %w", err)
	}

	if len(payload) == 0 || payload[0].Fact == "" {
		return "", fmt.Errorf("facts API returned an empty payload")
	}

	return payload[0].Fact, nil
}
