package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL points at the local development API.
	DefaultBaseURL = "http://localhost:4000"

	statsPath        = "/api/stats/summary"
	newsletterPath   = "/api/newsletter"
	applicationsPath = "/api/applications"

	requestIDHeader = "X-Request-ID"
)

// Config describes how to reach the Convoy API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the stats and lead-capture endpoints. It imposes no timeout
// of its own; callers bound requests through their context.
type Client struct {
	baseURL string
	rest    *resty.Client
	logger  *zap.Logger
}

// New builds a Client. An empty BaseURL falls back to DefaultBaseURL.
func New(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rest := resty.NewWithClient(pickHTTPClient(cfg.HTTPClient))
	rest.SetBaseURL(base)
	rest.SetHeader("Accept", "application/json")
	rest.SetLogger(logger.Sugar())
	return &Client{baseURL: base, rest: rest, logger: logger}
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	return &http.Client{}
}

// BaseURL reports the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Stats fetches the aggregate counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(statsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, serviceError(resp)
	}
	root, err := parseObject(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	data := root.Get("data")
	return &Stats{
		Newsletter:   parseCounter(data.Get("newsletter")),
		Applications: parseCounter(data.Get("applications")),
	}, nil
}

// SubscribeNewsletter posts a newsletter entry.
func (c *Client) SubscribeNewsletter(ctx context.Context, entry NewsletterEntry) (Result, error) {
	return c.post(ctx, newsletterPath, entry)
}

// SubmitApplication posts a build crew application.
func (c *Client) SubmitApplication(ctx context.Context, entry ApplicationEntry) (Result, error) {
	return c.post(ctx, applicationsPath, entry)
}

func (c *Client) post(ctx context.Context, path string, payload any) (Result, error) {
	requestID := uuid.NewString()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID).
		SetBody(payload).
		Post(path)
	if err != nil {
		c.logger.Debug("request failed", zap.String("path", path), zap.String("request_id", requestID), zap.Error(err))
		return Result{RequestID: requestID}, fmt.Errorf("post %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		svcErr := serviceError(resp)
		c.logger.Debug("service rejected request",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", svcErr.Status),
		)
		return Result{RequestID: requestID}, svcErr
	}
	root, err := parseObject(resp.Body())
	if err != nil {
		return Result{RequestID: requestID}, fmt.Errorf("post %s: %w", path, err)
	}
	return Result{
		Message:   stringAt(root, "data.message"),
		RequestID: requestID,
	}, nil
}

func serviceError(resp *resty.Response) *ServiceError {
	svcErr := &ServiceError{Status: resp.StatusCode()}
	body := resp.Body()
	if gjson.ValidBytes(body) {
		svcErr.Message = stringAt(gjson.ParseBytes(body), "error.message")
	}
	return svcErr
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrMalformedResponse
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, ErrMalformedResponse
	}
	return root, nil
}

func parseCounter(node gjson.Result) *Counter {
	if !node.IsObject() {
		return nil
	}
	counter := &Counter{}
	if total := node.Get("total"); total.Type == gjson.Number {
		value := total.Float()
		counter.Total = &value
	}
	return counter
}

func stringAt(root gjson.Result, path string) string {
	value := root.Get(path)
	if value.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(value.String())
}
