package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/hirebase/hirebase-go/internal/model"
)

// ErrorBody mirrors the server's wire error payload. Failed logins use the
// "message" key, the central error handler uses "errorMsg"; both decode here.
type ErrorBody struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	ErrorMsg  string `json:"errorMsg"`
}

// Response is the decoded body of a server reply. Which fields are populated
// depends on the endpoint and the outcome; shape branching belongs to the
// view model, not this transport.
type Response struct {
	Message      string              `json:"message"`
	Error        *ErrorBody          `json:"error"`
	FoundUser    *model.FoundUser    `json:"foundUser"`
	CreatedUser  *model.CreatedUser  `json:"createdUser"`
	Applications []model.Application `json:"applications"`
	StatusCode   int                 `json:"-"`
}

// Client is the HTTP transport for the view model. Its cookie jar carries the
// jwt session cookie across requests the way a browser's credentials:include
// does; the cookie's value is never read directly.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Login posts credentials to /login.
func (c *Client) Login(ctx context.Context, username, password string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/login", model.LoginRequest{Username: username, Password: password})
}

// Register posts a registration request to /register.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/register", req)
}

// ListApplications fetches /applications with the session cookie attached.
func (c *Client) ListApplications(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/applications", nil)
}

// Logout posts to /logout and reports only the status the server answered
// with; the body is a plain-text confirmation and carries no state.
func (c *Client) Logout(ctx context.Context) (int, error) {
	resp, err := c.request(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	resp, err := c.request(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	decoded := &Response{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(respBody, decoded); err != nil {
		// Plain-text bodies (validation strings, generic 500s) land here.
		return nil, fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	return decoded, nil
}

func (c *Client) request(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	return c.httpClient.Do(req)
}
