package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

// DefaultServer is used when neither --server nor QOZ_SERVER is set.
const DefaultServer = "http://localhost:4002"

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response carrying the server's error body.
type APIError struct {
	Status int
	Code   string `json:"error"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("qoz api error %d: %s", e.Status, e.Code)
	}
	return fmt.Sprintf("qoz api error %d: %s: %s", e.Status, e.Code, e.Detail)
}

type SearchResponse struct {
	Count      int                `json:"count"`
	Criteria   search.Criteria    `json:"criteria"`
	Stats      search.Stats       `json:"stats"`
	Properties []catalog.Property `json:"properties"`
}

type SessionView struct {
	Session    session.State      `json:"session"`
	Count      int                `json:"count"`
	Stats      search.Stats       `json:"stats"`
	Properties []catalog.Property `json:"properties"`
	Zoning     []string           `json:"zoning"`
}

type Client struct {
	baseURL string
	http    *retryablehttp.Client
	limiter *rate.Limiter
}

// New returns a client for the dashboard API at baseURL. Requests are
// throttled to perSecond with a burst of 5; perSecond <= 0 disables throttling.
func New(baseURL string, perSecond float64) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 6 * time.Second
	rc.Logger = nil
	// hand the last response back so 5xx bodies still decode into APIError
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	lim := rate.NewLimiter(rate.Inf, 0)
	if perSecond > 0 {
		lim = rate.NewLimiter(rate.Limit(perSecond), 5)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
		limiter: lim,
	}
}

func (c *Client) Search(ctx context.Context, p session.Patch) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, http.MethodPost, "/search", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Zoning(ctx context.Context) ([]string, error) {
	var out struct {
		Zoning []string `json:"zoning"`
	}
	if err := c.do(ctx, http.MethodGet, "/zoning", nil, &out); err != nil {
		return nil, err
	}
	return out.Zoning, nil
}

func (c *Client) Property(ctx context.Context, id string) (catalog.Property, error) {
	var out struct {
		Property catalog.Property `json:"property"`
	}
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), nil, &out); err != nil {
		return catalog.Property{}, err
	}
	return out.Property, nil
}

func (c *Client) CreateSession(ctx context.Context) (*SessionView, error) {
	var out SessionView
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*SessionView, error) {
	var out SessionView
	if err := c.do(ctx, http.MethodGet, "/v1/sessions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, p session.Patch) (*SessionView, error) {
	var out SessionView
	if err := c.do(ctx, http.MethodPatch, "/v1/sessions/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/sessions/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := ioReadAllLimit(resp.Body, 4<<20)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
		}
		return apiErr
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
