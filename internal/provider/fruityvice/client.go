// Package fruityvice looks up fruit facts by name from the FruityVice API.
package fruityvice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.fruityvice.com"

var ErrFruitNotFound = errors.New("fruit not found")

type Nutritions struct {
	Calories      float64 `json:"calories"`
	Fat           float64 `json:"fat"`
	Sugar         float64 `json:"sugar"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
}

type Fruit struct {
	Name       string     `json:"name"`
	Family     string     `json:"family"`
	Order      string     `json:"order"`
	Genus      string     `json:"genus"`
	Nutritions Nutritions `json:"nutritions"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Lookup fetches one fruit by name. An unknown name returns ErrFruitNotFound;
// transport and decode failures come back wrapped with a human-readable
// message.
func (c *Client) Lookup(ctx context.Context, name string) (Fruit, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Fruit{}, fmt.Errorf("fruit name is empty")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	endpoint := fmt.Sprintf("%s/api/fruit/%s", baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Fruit{}, fmt.Errorf("create fruit request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Fruit{}, fmt.Errorf("execute fruit request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Fruit{}, fmt.Errorf("%w: %q", ErrFruitNotFound, name)
	case resp.StatusCode != http.StatusOK:
		return Fruit{}, fmt.Errorf("fruit lookup failed with status %d", resp.StatusCode)
	}

	var fruit Fruit
	if err := json.NewDecoder(resp.Body).Decode(&fruit); err != nil {
		return Fruit{}, fmt.Errorf("decode fruit response: %w", err)
	}
	return fruit, nil
}
