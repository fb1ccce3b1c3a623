package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

const apiKeyHeader = "x-goog-api-key"

// Hooks lets callers observe a call without the client doing any logging itself.
// Nil hooks are skipped.
type Hooks struct {
	// OnRequest runs before the payload is sent.
	OnRequest func(ctx context.Context, url string, payload Payload)
	// OnResponse runs after a response arrives or the transport fails.
	// body is nil when err is non-nil.
	OnResponse func(ctx context.Context, status int, body []byte, elapsed time.Duration, err error)
	// OnOutcome runs once the body has been decoded.
	OnOutcome func(ctx context.Context, outcome Outcome)
}

// Client sends generateContent requests to the Gemini API.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	Hooks   Hooks
	http    *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every outbound call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHooks installs observation callbacks.
func WithHooks(h Hooks) Option {
	return func(c *Client) {
		c.Hooks = h
	}
}

// NewClient creates a client for the given endpoint, key and model.
// An empty baseURL or model falls back to the public defaults.
func NewClient(baseURL, apiKey, model string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		http:    resty.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ModelTag returns the tag attached to every ChatResult this client produces.
func (c *Client) ModelTag() string {
	return c.Model
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
}

// Generate sends payload and decodes the response. The returned error is
// non-nil only for transport failures: network errors, timeouts and non-2xx
// statuses. Any body that arrives is classified by Decode.
func (c *Client) Generate(ctx context.Context, payload Payload) (Outcome, error) {
	url := c.endpoint()
	if c.Hooks.OnRequest != nil {
		c.Hooks.OnRequest(ctx, url, payload)
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	elapsed := time.Since(start)

	if err != nil {
		err = fmt.Errorf("failed to send request: %w", err)
		c.onResponse(ctx, 0, nil, elapsed, err)
		return nil, err
	}
	if !resp.IsSuccess() {
		err = fmt.Errorf("bad status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
		c.onResponse(ctx, resp.StatusCode(), nil, elapsed, err)
		return nil, err
	}

	body := resp.Body()
	c.onResponse(ctx, resp.StatusCode(), body, elapsed, nil)

	outcome := Decode(body)
	if c.Hooks.OnOutcome != nil {
		c.Hooks.OnOutcome(ctx, outcome)
	}
	return outcome, nil
}

func (c *Client) onResponse(ctx context.Context, status int, body []byte, elapsed time.Duration, err error) {
	if c.Hooks.OnResponse != nil {
		c.Hooks.OnResponse(ctx, status, body, elapsed, err)
	}
}

// Resolve folds a Generate return pair into a ChatResult. Transport failures
// become an "error calling provider" result.
func Resolve(outcome Outcome, err error, modelTag string) ChatResult {
	if err != nil {
		return ChatResult{Text: "error calling provider: " + err.Error(), ModelTag: modelTag}
	}
	if outcome == nil {
		return Malformed{}.Result(modelTag)
	}
	return outcome.Result(modelTag)
}
