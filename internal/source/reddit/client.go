package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"modsync/internal/token"
)

const (
	GrantPassword          = "password"
	GrantClientCredentials = "client_credentials"

	defaultTokenTTL = time.Hour
)

// Config holds upstream API configuration.
type Config struct {
	BaseURL      string
	TokenURL     string
	UserAgent    string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	GrantType    string
	Timeout      time.Duration
	PageSize     int
}

// Client issues authenticated calls against the upstream REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	cfg        Config
	tokens     *token.Cache
	refreshMu  sync.Mutex
	logger     *slog.Logger
}

// New creates a client that reads and refreshes its bearer token through tokens.
func New(cfg Config, tokens *token.Cache, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &userAgentTransport{
				base:      http.DefaultTransport,
				userAgent: cfg.UserAgent,
			},
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		pageSize: cfg.PageSize,
		cfg:      cfg,
		tokens:   tokens,
		logger:   logger.With("component", "reddit"),
	}
}

// Call performs one authenticated request and returns the raw JSON body.
// A 401 on the first attempt refreshes the token and retries exactly once.
func (c *Client) Call(ctx context.Context, method, path string, query, form url.Values) (json.RawMessage, error) {
	tok, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, status, err := c.doRequest(ctx, method, path, query, form, tok)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.logger.Warn("unauthorized, refreshing token and retrying",
			"path", path,
			"method", method,
		)

		tok, err = c.refreshRejected(ctx, tok)
		if err != nil {
			return nil, err
		}

		body, status, err = c.doRequest(ctx, method, path, query, form, tok)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			return nil, &AuthError{Status: status, Body: string(body)}
		}
	}

	if status < 200 || status > 299 {
		return nil, &UpstreamError{Status: status, Body: string(body), Method: method, Path: path}
	}

	if !json.Valid(body) {
		c.logger.Error("malformed upstream response",
			"path", path,
			"body", string(body),
		)
		return nil, &DecodeError{Body: body, Err: fmt.Errorf("invalid JSON from %s", path)}
	}

	return body, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, query, form url.Values, tok string) ([]byte, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.Get(); ok {
		return tok.Value, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if tok, ok := c.tokens.Get(); ok {
		return tok.Value, nil
	}
	return c.refreshToken(ctx)
}

// refreshRejected replaces a token the API refused. If another caller already
// swapped it for a different one, that token is reused instead.
func (c *Client) refreshRejected(ctx context.Context, rejected string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if tok, ok := c.tokens.Get(); ok && tok.Value != rejected {
		return tok.Value, nil
	}
	c.tokens.Clear()
	return c.refreshToken(ctx)
}

// refreshToken must be called with refreshMu held.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.logger.Info("obtaining new access token", "grant_type", c.grantType())

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	var (
		tok *oauth2.Token
		err error
	)
	switch c.grantType() {
	case GrantClientCredentials:
		cc := clientcredentials.Config{
			ClientID:     c.cfg.ClientID,
			ClientSecret: c.cfg.ClientSecret,
			TokenURL:     c.cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		tok, err = cc.Token(ctx)
	default:
		oc := oauth2.Config{
			ClientID:     c.cfg.ClientID,
			ClientSecret: c.cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  c.cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
		tok, err = oc.PasswordCredentialsToken(ctx, c.cfg.Username, c.cfg.Password)
	}
	if err != nil {
		c.logger.Error("token exchange failed", "error", err)
		authErr := &AuthError{Err: err}
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			authErr.Status = re.Response.StatusCode
			authErr.Body = string(re.Body)
		}
		return "", authErr
	}

	c.tokens.Set(tok.AccessToken, tokenTTL(tok))
	c.logger.Info("access token acquired")

	return tok.AccessToken, nil
}

func (c *Client) grantType() string {
	if c.cfg.GrantType == "" {
		return GrantPassword
	}
	return c.cfg.GrantType
}

func tokenTTL(tok *oauth2.Token) time.Duration {
	if tok.ExpiresIn > 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}
	if !tok.Expiry.IsZero() {
		if ttl := time.Until(tok.Expiry); ttl > 0 {
			return ttl
		}
	}
	return defaultTokenTTL
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") == t.userAgent {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

// decode unmarshals raw into out, reporting failures as DecodeError.
func decode(raw json.RawMessage, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return &DecodeError{Body: raw, Err: err}
	}
	return nil
}
