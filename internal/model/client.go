package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/actuallystonmai/jobrec/internal/domain"
)

const (
	healthPath    = "/health"
	recommendPath = "/api/recommend"

	// cap on how much of an error body is read looking for "detail"
	maxErrorBody = 64 << 10
)

// Client talks to the remote recommendation API. Every call is a single
// attempt; timeouts are whatever the injected http.Client carries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// CheckHealth fetches the readiness report. Failures are returned, never
// swallowed; deciding to ignore them is up to the caller.
func (c *Client) CheckHealth(ctx context.Context) (*domain.APIHealth, error) {
	endpoint := c.baseURL + healthPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.NetworkError{Op: http.MethodGet, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: http.MethodGet, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := readAPIError(resp, domain.MsgHealthCheckFailed)
		c.logger.Printf("[client] health check error endpoint=%s status=%d detail=%q", endpoint, resp.StatusCode, apiErr.Detail)
		return nil, apiErr
	}

	var health domain.APIHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, &domain.NetworkError{Op: http.MethodGet, URL: endpoint, Err: fmt.Errorf("decode health: %w", err)}
	}
	return &health, nil
}

// Recommend posts the skills and returns the recommendations field as sent
// by the server. The only shape check is that the field exists.
func (c *Client) Recommend(ctx context.Context, in domain.RecommendationRequest) ([]domain.JobRecommendation, error) {
	endpoint := c.baseURL + recommendPath

	if in.Skills == nil {
		in.Skills = []string{}
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.NetworkError{Op: http.MethodPost, URL: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: http.MethodPost, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := readAPIError(resp, domain.MsgFetchFailed)
		c.logger.Printf("[client] recommend error endpoint=%s status=%d detail=%q", endpoint, resp.StatusCode, apiErr.Detail)
		return nil, apiErr
	}

	var out domain.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.NetworkError{Op: http.MethodPost, URL: endpoint, Err: fmt.Errorf("decode recommendations: %w", err)}
	}
	if out.Recommendations == nil {
		return nil, &domain.NetworkError{Op: http.MethodPost, URL: endpoint, Err: domain.ErrMissingRecommendations}
	}
	return *out.Recommendations, nil
}

// readAPIError builds an APIError from a non-2xx response. Only a string
// "detail" is used; FastAPI validation errors send a list there.
func readAPIError(resp *http.Response, fallback string) *domain.APIError {
	apiErr := &domain.APIError{StatusCode: resp.StatusCode, Fallback: fallback}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return apiErr
	}
	var detail string
	if err := json.Unmarshal(payload["detail"], &detail); err == nil {
		apiErr.Detail = detail
	}
	return apiErr
}
