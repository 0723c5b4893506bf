package geo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"cotizador/internal/config"
	"cotizador/internal/domain"
	"cotizador/internal/port"
)

// tokenSkew is subtracted from the token expiry so a request never leaves
// with a token about to lapse in flight.
const tokenSkew = 30 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type regionRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// Client fetches department and municipality reference data from the region
// service, performing the client-credential token exchange it requires.
type Client struct {
	http *resty.Client
	cfg  config.GeoConfig

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient creates a region service client.
func NewClient(cfg *config.GeoConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, cfg: *cfg}
}

// FetchRegions retrieves both reference collections. Any non-success
// response or malformed payload is a load failure; the caller's cache stays
// empty and region validation fails closed.
func (c *Client) FetchRegions(ctx context.Context) ([]domain.LookupEntry, []domain.LookupEntry, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, nil, err
	}

	departments, err := c.fetchCollection(ctx, token, c.cfg.DepartmentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching departments: %w", err)
	}
	municipalities, err := c.fetchCollection(ctx, token, c.cfg.MunicipalitiesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching municipalities: %w", err)
	}
	return departments, municipalities, nil
}

func (c *Client) fetchCollection(ctx context.Context, token, path string) ([]domain.LookupEntry, error) {
	var records []regionRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&records).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("region service returned %d", resp.StatusCode())
	}

	entries := make([]domain.LookupEntry, 0, len(records))
	for _, r := range records {
		if r.ID == "" || r.Name == "" {
			return nil, fmt.Errorf("malformed region record")
		}
		entries = append(entries, domain.LookupEntry{ID: r.ID, ParentID: r.ParentID, Name: r.Name})
	}
	return entries, nil
}

// accessToken returns a cached token or performs the client-credential
// exchange. Expiry comes from the token's own exp claim when it parses as a
// JWT, falling back to the advertised expires_in.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp.Add(-tokenSkew)) {
		return c.token, nil
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		SetResult(&tok).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	if resp.IsError() || tok.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned %d", resp.StatusCode())
	}

	c.token = tok.AccessToken
	c.tokenExp = tokenExpiry(tok)
	return c.token, nil
}

func tokenExpiry(tok tokenResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if tok.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	}
	return time.Now()
}

// Compile-time check.
var _ port.RegionFetcher = (*Client)(nil)
