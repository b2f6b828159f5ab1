// Package platform is the typed REST client of the HR assessment platform.
// The platform owns every tenant entity; the console only reads and mutates
// them through the endpoints wrapped here.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hr_console/internal/config"
	"hr_console/pkg/logger"
	"hr_console/pkg/monitoring"
	"hr_console/pkg/tracing"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	csrfHeader = "X-CSRFToken"
	csrfCookie = "csrftoken"
)

// APIError is a non-2xx answer of the platform.
type APIError struct {
	Operation string
	Status    int
	Message   string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status of err when it is an *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	csrfPath  string
	csrfToken string

	bootstrap singleflight.Group
}

type Option func(*Client)

// WithHTTPClient replaces the default instrumented client. The client's jar is
// kept when set, otherwise a fresh one is attached.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(cfg config.PlatformConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse platform base url")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultPlatformTimeout
	}

	c := &Client{
		baseURL:   base,
		csrfPath:  cfg.CSRFPath,
		csrfToken: cfg.CSRFToken,
		http: &http.Client{
			Timeout:   timeout,
			Transport: tracing.Transport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return c, nil
}

// request describes one platform call.
type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	fallback    string
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// send performs r and returns the raw response for 2xx answers. The caller
// owns the body.
func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), r.body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", r.op)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.method != http.MethodGet && r.method != http.MethodHead {
		if token := c.csrf(ctx); token != "" {
			req.Header.Set(csrfHeader, token)
		}
		req.Header.Set("Referer", c.baseURL.String()+"/")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.ObservePlatformCall(r.op, 0, started)
		logger.Log.Warn("platform call failed", zap.String("op", r.op), zap.Error(err))
		return nil, errors.Wrapf(err, "%s", r.fallback)
	}
	monitoring.ObservePlatformCall(r.op, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{
			Operation: r.op,
			Status:    resp.StatusCode,
			Message:   errorMessage(raw, r.fallback),
		}
		logger.Log.Warn("platform rejected call",
			zap.String("op", r.op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}
	return resp, nil
}

// do performs r and decodes a JSON answer into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrapf(err, "decode %s response", r.op)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out interface{}, fallback string) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encode %s request", op)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, request{
		op:          op,
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
		fallback:    fallback,
	}, out)
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}, fallback string) error {
	return c.do(ctx, request{op: op, method: http.MethodGet, path: path, query: query, fallback: fallback}, out)
}

// upload posts one file as a multipart form field.
func (c *Client) upload(ctx context.Context, op, path, field, filename string, content io.Reader, out interface{}, fallback string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrapf(err, "build %s form", op)
	}
	if _, err := io.Copy(part, content); err != nil {
		return errors.Wrapf(err, "read %s upload", op)
	}
	if err := mw.Close(); err != nil {
		return errors.Wrapf(err, "build %s form", op)
	}
	return c.do(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        &buf,
		contentType: mw.FormDataContentType(),
		fallback:    fallback,
	}, out)
}

// csrf returns the token sent with mutating calls: the configured one, or the
// platform's csrftoken cookie. Concurrent callers missing the cookie share a
// single GET of the csrf path.
func (c *Client) csrf(ctx context.Context) string {
	if c.csrfToken != "" {
		return c.csrfToken
	}
	if token := c.cookieToken(); token != "" {
		return token
	}
	if c.csrfPath == "" {
		return ""
	}

	v, _, _ := c.bootstrap.Do(c.csrfPath, func() (interface{}, error) {
		return c.fetchCSRF(context.WithoutCancel(ctx)), nil
	})
	return v.(string)
}

func (c *Client) fetchCSRF(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.csrfPath, nil), nil)
	if err != nil {
		return ""
	}
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Warn("csrf bootstrap failed", zap.Error(err))
		return ""
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return c.cookieToken()
}

func (c *Client) cookieToken() string {
	for _, ck := range c.http.Jar.Cookies(c.baseURL) {
		if ck.Name == csrfCookie {
			return ck.Value
		}
	}
	return ""
}

// errorMessage pulls the server supplied message out of an error body.
func errorMessage(raw []byte, fallback string) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fallback
	}
	for _, key := range []string{"error", "message", "detail"} {
		switch v := payload[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case []interface{}:
			if len(v) > 0 {
				return fmt.Sprint(v[0])
			}
		}
	}
	return fallback
}
