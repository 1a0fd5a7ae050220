package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultNewsURL   = "https://newsapi.org/v2/everything"
	DefaultNewsQuery = "carbon footprint environment"
)

var ErrNewsUnavailable = errors.New("upstream: news unavailable")

// Article is one upstream article, kept as raw JSON so it reaches clients
// byte for byte, unknown fields and odd values included.
type Article = json.RawMessage

type NewsClient interface {
	FetchArticles(ctx context.Context, query string) ([]Article, error)
}

type NewsAPI struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewNewsAPI returns a client for the /v2/everything endpoint. A zero
// timeout leaves the transport defaults in charge.
func NewNewsAPI(baseURL, apiKey string, timeout time.Duration) *NewsAPI {
	if baseURL == "" {
		baseURL = DefaultNewsURL
	}
	return &NewsAPI{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type newsResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

func (c *NewsAPI) FetchArticles(ctx context.Context, query string) ([]Article, error) {
	if query == "" {
		query = DefaultNewsQuery
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("upstream: news url: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	// Header auth keeps the key out of access logs.
	if c.APIKey != "" {
		req.Header.Set("X-Api-Key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}
	defer resp.Body.Close()

	var body newsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode (status %d): %v", ErrNewsUnavailable, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || body.Status == "error" {
		return nil, fmt.Errorf("%w: status %d %s: %s", ErrNewsUnavailable, resp.StatusCode, body.Code, body.Message)
	}

	if body.Articles == nil {
		return []Article{}, nil
	}
	return body.Articles, nil
}
