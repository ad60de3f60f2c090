// Package api is the HTTP gateway to the remote hotel-operations API. It
// owns no domain logic: every method is a typed wrapper around one endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/example/frontdesk/internal/constants"
	"github.com/example/frontdesk/internal/logger"
)

// TokenSource supplies the current bearer token. An empty token issues the
// request unauthenticated (the login endpoint itself).
type TokenSource interface {
	Token() string
}

// Error is a non-2xx response from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// AuthDenied reports whether err is an authorization-denied response.
func AuthDenied(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// Options configures a Client.
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitPerSec float64
	CacheTTL        time.Duration
}

// Client is the shared transport for every resource gateway. Auth-denied
// responses invoke the configured hook exactly once per response, before the
// error is returned to the caller.
type Client struct {
	base    string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	cache   *gocache.Cache

	onAuthDenied func()

	Accounts     *AccountsService
	Rooms        *RoomsService
	Reservations *ReservationsService
	Statistics   *StatisticsService
}

// New creates a Client for the given API endpoint.
func New(opts Options, tokens TokenSource) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		base:   strings.TrimRight(opts.BaseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}
	if opts.RateLimitPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitPerSec), int(opts.RateLimitPerSec)+1)
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.cache = gocache.New(ttl, 2*ttl)

	c.Accounts = &AccountsService{client: c}
	c.Rooms = &RoomsService{client: c}
	c.Reservations = &ReservationsService{client: c}
	c.Statistics = &StatisticsService{client: c}
	return c
}

// OnAuthDenied registers the hook invoked whenever any request comes back
// authorization-denied, regardless of which resource issued it.
func (c *Client) OnAuthDenied(fn func()) {
	c.onAuthDenied = fn
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	endpoint := c.base + constants.APIPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		if AuthDenied(apiErr) && c.onAuthDenied != nil {
			logger.Info("Authorization denied, clearing session", "status", resp.StatusCode, "path", path)
			c.onAuthDenied()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error body. The
// API answers sometimes with plain text and sometimes with {"message": ...}.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var wrapped struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &wrapped) == nil && wrapped.Message != "" {
		return wrapped.Message
	}
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}
	return text
}

// cachedGet serves the request from the short-TTL cache when possible. Used
// only for the room dropdown reads, which the filter panes request on every
// view mount.
func (c *Client) cachedGet(ctx context.Context, path string, query url.Values, out any) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	if raw, found := c.cache.Get(key); found {
		return json.Unmarshal(raw.([]byte), out)
	}
	if err := c.get(ctx, path, query, out); err != nil {
		return err
	}
	if data, err := json.Marshal(out); err == nil {
		c.cache.Set(key, data, gocache.DefaultExpiration)
	}
	return nil
}

// invalidateCache drops every cached read after a mutation.
func (c *Client) invalidateCache() {
	c.cache.Flush()
}
