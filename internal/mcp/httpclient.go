package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/storage"
)

// HTTPClient implements DataSource by calling the PlanForge REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
// The API key is only sent on write requests.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("httpclient: %s: %w", path, storage.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// AllExercises fetches the full catalog. The search endpoint with no
// filters and a high limit returns every row in catalog order.
func (c *HTTPClient) AllExercises(ctx context.Context) ([]catalog.Exercise, error) {
	params := url.Values{}
	params.Set("limit", "10000")

	body, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}

	var entries []catalog.Exercise
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) SearchExercises(ctx context.Context, nameQuery, bodyPart string, limit int) ([]catalog.Exercise, error) {
	params := url.Values{}
	if nameQuery != "" {
		params.Set("q", nameQuery)
	}
	if bodyPart != "" {
		params.Set("bodyPart", bodyPart)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}

	var entries []catalog.Exercise
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) GetExercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/exercises/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var e catalog.Exercise
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercise: %w", err)
	}
	return &e, nil
}

// CountExercises reads the catalog size from the health endpoint.
func (c *HTTPClient) CountExercises(ctx context.Context) (int, error) {
	body, err := c.get(ctx, "/healthz", nil)
	if err != nil {
		return 0, err
	}

	var resp struct {
		Exercises int `json:"exercises"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("httpclient: decode health: %w", err)
	}
	return resp.Exercises, nil
}

// InsertPlan stores a plan by posting the profile to the generation
// endpoint. Generation is deterministic, so the server produces the
// same plan the caller already holds; only the returned ID is used.
func (c *HTTPClient) InsertPlan(ctx context.Context, profile plan.UserProfile, _ *plan.GeneratedWorkoutPlan) (uuid.UUID, error) {
	body, err := c.postJSON(ctx, "/api/v1/plans", profile)
	if err != nil {
		return uuid.Nil, err
	}

	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("httpclient: decode plan response: %w", err)
	}
	return resp.ID, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRecord, error) {
	body, err := c.get(ctx, "/api/v1/plans/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var rec storage.PlanRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &rec, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context, limit int) ([]storage.PlanRecord, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, "/api/v1/plans", params)
	if err != nil {
		return nil, err
	}

	var records []storage.PlanRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode plans: %w", err)
	}
	return records, nil
}
