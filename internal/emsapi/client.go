package emsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ignite/emspanel/internal/config"
)

// HTTPDoer is the interface for executing HTTP requests. Both
// *http.Client and test doubles satisfy it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialStore is the session credential surface the client needs:
// read the current cookie before each request, and persist the cookie
// issued by an authentication response. SaveCookie swallows persistence
// failures internally; the client never sees them.
type CredentialStore interface {
	Cookie(ctx context.Context) (string, bool)
	SaveCookie(ctx context.Context, raw string)
}

// Client executes Endpoints against the panel API. It attaches the
// session cookie, decodes the response envelope, and maps API status
// codes to the typed error taxonomy. It never retries; retrying is the
// caller's responsibility.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	creds      CredentialStore
}

// NewClient creates a panel API client for the configured environment.
func NewClient(cfg config.APIConfig, creds CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		creds: creds,
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client HTTPDoer) {
	c.httpClient = client
}

// execute performs the HTTP round trip for an endpoint and interprets the
// envelope. On success it returns the envelope shell with the raw data
// block still undecoded.
func (c *Client) execute(ctx context.Context, ep Endpoint) (*envelope, error) {
	fullURL := c.baseURL + ep.Path
	if q := ep.EncodeQuery(); q != "" {
		fullURL += "?" + q
	}
	if _, err := url.ParseRequestURI(fullURL); err != nil {
		return nil, &APIError{Kind: KindInvalidURL, Message: fullURL}
	}

	var body io.Reader
	if len(ep.Body) > 0 {
		body = bytes.NewReader(ep.Body)
	}
	req, err := http.NewRequestWithContext(ctx, ep.Method, fullURL, body)
	if err != nil {
		return nil, &APIError{Kind: KindInvalidURL, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if len(ep.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie, ok := c.creds.Cookie(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled call surfaces the context error and applies no
		// store mutation.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &APIError{Kind: KindUnknown, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &APIError{Kind: KindUnknown, Message: err.Error()}
	}

	var env envelope
	parsed := json.Unmarshal(raw, &env) == nil && env.Status.Code != ""

	// Envelope status codes are matched before generic HTTP status
	// inspection.
	if parsed {
		switch env.Status.Code {
		case StatusOK:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if setCookie := resp.Header.Get("Set-Cookie"); setCookie != "" {
				c.creds.SaveCookie(ctx, setCookie)
			}
			return &env, nil
		case StatusValidationFailed:
			return nil, ValidationError(env.Status.Details)
		case StatusAccountNotActivated:
			return nil, ErrAccountNotActivated
		case StatusNotFound:
			return nil, ErrNotFound
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuthentication
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case resp.StatusCode >= 500:
		if parsed {
			return nil, ServerError(env.Status.Code)
		}
		return nil, ServerError(strings.TrimSpace(string(raw)))
	case !parsed:
		return nil, ErrDecoding
	default:
		return nil, ErrUnknown
	}
}

// Do executes an endpoint and decodes its payload into T. An absent or
// shape-mismatched payload yields ErrNoData, never a decode failure.
func Do[T any](ctx context.Context, c *Client, ep Endpoint) (T, error) {
	var zero T
	env, err := c.execute(ctx, ep)
	if err != nil {
		return zero, err
	}
	v, ok := decodePayload[T](env.Data)
	if !ok {
		return zero, ErrNoData
	}
	return v, nil
}

// DoNoContent executes an endpoint whose operation returns no payload.
func (c *Client) DoNoContent(ctx context.Context, ep Endpoint) error {
	_, err := c.execute(ctx, ep)
	return err
}
