package carbonsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the carbon API's public endpoints and opens Sessions for the
// authenticated ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10s request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a user. The response carries a session token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.call(ctx, http.MethodPost, "/signup", req, &out, "", http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.call(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Authenticate logs in and wraps the token in a Session.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(resp.Token), nil
}

// NewSession wraps a token obtained elsewhere, e.g. from Signup.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := c.call(ctx, http.MethodGet, "/vehicles", nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Calculate returns the emission for distance travelled in vehicleType.
func (c *Client) Calculate(ctx context.Context, vehicleType string, distance float64) (float64, error) {
	var out CalculateResponse
	req := CalculateRequest{VehicleType: vehicleType, Distance: distance}
	if err := c.call(ctx, http.MethodPost, "/calculate", req, &out, "", http.StatusOK); err != nil {
		return 0, err
	}
	return out.Emission, nil
}

// Suggest builds a report for answers without saving them.
func (c *Client) Suggest(ctx context.Context, answers QuizAnswers) (string, error) {
	var out SuggestionsResponse
	if err := c.call(ctx, http.MethodPost, "/suggestions", answers, &out, "", http.StatusOK); err != nil {
		return "", err
	}
	return out.Suggestions, nil
}

// Chat sends one message to the assistant.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out ChatResponse
	if err := c.call(ctx, http.MethodPost, "/chat", ChatRequest{Message: message}, &out, "", http.StatusOK); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// News fetches articles. An empty query uses the server default.
func (c *Client) News(ctx context.Context, query string) ([]Article, error) {
	path := "/news"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var out []Article
	if err := c.call(ctx, http.MethodGet, path, nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
