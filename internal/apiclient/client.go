// Package apiclient talks to the MamaGhar admin backend. It owns request
// construction (routes, auth header, locale header), response envelope
// decoding, and the error taxonomy: 401 becomes an auth-category error the
// shell reacts to, everything else surfaces the server message verbatim.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	"github.com/mamaghar/go-admin/internal/logging"
	"github.com/mamaghar/go-admin/internal/payload"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP API client. It performs no retries and keeps no state
// beyond its collaborators; timeout behaviour belongs to the injected
// *http.Client and the caller's context.
type Client struct {
	routes *urlkit.RouteManager
	http   *http.Client
	tokens interfaces.TokenProvider
	logger interfaces.Logger
}

// Option configures the client at construction time.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger injects the API logger namespace.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRouteConfig replaces the default route table, e.g. for staging
// environments with diverging paths.
func WithRouteConfig(cfg *urlkit.Config) Option {
	return func(c *Client) {
		if cfg != nil {
			c.routes = urlkit.NewRouteManager(cfg)
		}
	}
}

// New constructs a client for the API rooted at baseURL. Tokens for
// authenticated calls come from the supplied provider; the client never
// reads ambient state.
func New(baseURL string, tokens interfaces.TokenProvider, opts ...Option) *Client {
	c := &Client{
		routes: urlkit.NewRouteManager(DefaultRouteConfig(baseURL)),
		http:   &http.Client{Timeout: defaultTimeout},
		tokens: tokens,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges admin credentials for a session token. It does not store
// the token; that is the auth service's job.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	url, err := c.buildURL(routeLogin, nil, nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodPost, url, body, "application/json", "", false)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: env.Token, Admin: env.Admin}, nil
}

// Create submits a new record and returns the server's confirmation message.
func (c *Client) Create(ctx context.Context, kind Kind, sub *payload.Submission) (string, error) {
	url, err := c.buildURL(string(kind)+suffixCollection, nil, nil)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, http.MethodPost, url, sub)
}

// Update replaces an existing record and returns the confirmation message.
func (c *Client) Update(ctx context.Context, kind Kind, id string, sub *payload.Submission) (string, error) {
	url, err := c.buildURL(string(kind)+suffixItem, map[string]any{"id": id}, nil)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, http.MethodPut, url, sub)
}

func (c *Client) submit(ctx context.Context, method, url string, sub *payload.Submission) (string, error) {
	var (
		body        []byte
		contentType string
		err         error
	)
	if sub.Image != nil {
		body, contentType, err = sub.EncodeMultipart()
	} else {
		body, err = sub.EncodeJSON()
		contentType = "application/json"
	}
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, method, url, body, contentType, "", true)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// FetchByID retrieves one record with the given locale's variant preferred.
func (c *Client) FetchByID(ctx context.Context, kind Kind, id, locale string) (*Record, error) {
	url, err := c.buildURL(string(kind)+suffixByID, map[string]any{"id": id}, nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", locale, true)
	if err != nil {
		return nil, err
	}

	var record Record
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &record); err != nil {
			return nil, fmt.Errorf("apiclient: decode %s record: %w", kind, err)
		}
	}
	return &record, nil
}

// List returns one page of records with the backend's pagination metadata.
func (c *Client) List(ctx context.Context, kind Kind, opts ListOptions) (*RecordPage, error) {
	url, err := c.buildURL(string(kind)+suffixCollection, nil, listQuery(opts))
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", opts.Locale, true)
	if err != nil {
		return nil, err
	}

	page := &RecordPage{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page.Records); err != nil {
			return nil, fmt.Errorf("apiclient: decode %s list: %w", kind, err)
		}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// ListByLanguage returns the reference rows backing dropdowns (e.g. the
// districts offered while authoring a city), localized to one locale.
func (c *Client) ListByLanguage(ctx context.Context, kind Kind, locale string) ([]Record, error) {
	url, err := c.buildURL(string(kind)+suffixByLanguage, nil, nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodGet, url, nil, "", locale, true)
	if err != nil {
		return nil, err
	}

	var records []Record
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, fmt.Errorf("apiclient: decode %s reference list: %w", kind, err)
		}
	}
	return records, nil
}

// Delete removes a record and returns the confirmation message.
func (c *Client) Delete(ctx context.Context, kind Kind, id string) (string, error) {
	url, err := c.buildURL(string(kind)+suffixItem, map[string]any{"id": id}, nil)
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, http.MethodDelete, url, nil, "", "", true)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) buildURL(route string, params map[string]any, query map[string][]string) (string, error) {
	builder := c.routes.Group(routeGroup).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	for key, values := range query {
		for _, v := range values {
			builder.WithQuery(key, v)
		}
	}
	return builder.Build()
}

// do executes one request and maps the response to the error taxonomy. When
// authenticated is set and no token is available, the request never reaches
// the network.
func (c *Client) do(ctx context.Context, method, url string, body []byte, contentType, locale string, authenticated bool) (*envelope, error) {
	var token string
	if authenticated {
		var ok bool
		token, ok = c.tokens.Token()
		if !ok || token == "" {
			return nil, authError(ErrTokenMissing, "no authentication token found")
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if locale != "" {
		req.Header.Set("Accept-Language", locale)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	logger := logging.WithFields(c.logger, map[string]any{
		"method":     method,
		"url":        url,
		"request_id": requestID,
	})
	logger.Debug("api.request.start")

	res, err := c.http.Do(req)
	if err != nil {
		logger.Error("api.request.transport_error", "error", err)
		return nil, requestError(err, "network error or server is down")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, requestError(err, "network error or server is down")
	}

	env := &envelope{}
	if len(raw) > 0 {
		// Tolerate non-JSON error bodies; the status code still decides.
		_ = json.Unmarshal(raw, env)
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		logger.Warn("api.request.unauthorized")
		message := env.Message
		if message == "" {
			message = "session expired, please log in again"
		}
		return nil, authError(ErrSessionExpired, message)
	case res.StatusCode < 200 || res.StatusCode > 299:
		logger.Warn("api.request.failed", "status", res.StatusCode)
		return nil, requestError(fmt.Errorf("%w: status %d", ErrRequestFailed, res.StatusCode), env.Message)
	}

	logger.Debug("api.request.success", "status", res.StatusCode)
	return env, nil
}
