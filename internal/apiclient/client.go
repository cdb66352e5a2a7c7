// AngelaMos | 2026
// client.go

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/angelamos/memorial/internal/action"
	"github.com/angelamos/memorial/internal/auth"
	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/session"
)

const (
	defaultTimeout = 15 * time.Second
	maxBody        = 4 << 20
	userAgent      = "memorialctl"
)

// APIError is a non-2xx answer from the versioned API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type actionResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

var _ session.Authenticator = (*Client)(nil)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	log        *slog.Logger
}

func New(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("adapter", "apiclient"),
	}
}

// WithToken returns a copy that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.DebugContext(ctx, "api request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func (c *Client) act(ctx context.Context, name string, form any) (*actionResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/actions/"+name, form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var res actionResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&res); err != nil {
		return nil, fmt.Errorf("apiclient: decode %s result: %w", name, err)
	}
	return &res, nil
}

func (r *actionResult) public() action.Result {
	out := action.Result{Success: r.Success, Message: r.Message, Errors: r.Errors}
	if len(r.Data) > 0 {
		out.Data = r.Data
	}
	return out
}

// call decodes the data member of a versioned API response into dst. It
// reports false for a 404.
func (c *Client) call(ctx context.Context, method, path string, body, dst any) (bool, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, decodeError(resp)
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&env); err != nil {
		return false, fmt.Errorf("apiclient: decode %s: %w", path, err)
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			return false, fmt.Errorf("apiclient: decode %s data: %w", path, err)
		}
	}
	return true, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}

// Login implements session.Authenticator over the login action.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Grant, error) {
	res, err := c.act(ctx, "login", auth.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &session.RejectedError{Message: res.Message}
	}

	var ar auth.AuthResponse
	if err := json.Unmarshal(res.Data, &ar); err != nil {
		return nil, fmt.Errorf("apiclient: decode login data: %w", err)
	}

	return &session.Grant{
		User: session.User{
			ID:         ar.User.ID,
			Email:      ar.User.Email,
			Name:       ar.User.Name,
			Role:       ar.User.Role,
			IsVerified: ar.User.IsVerified,
		},
		Token: ar.Tokens.AccessToken,
	}, nil
}

func (c *Client) Signup(ctx context.Context, form auth.SignupRequest) (action.Result, error) {
	res, err := c.act(ctx, "signup", form)
	if err != nil {
		return action.Result{}, err
	}
	return res.public(), nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (action.Result, error) {
	res, err := c.act(ctx, "verify-email", auth.VerifyEmailRequest{Token: token})
	if err != nil {
		return action.Result{}, err
	}
	return res.public(), nil
}

func (c *Client) Contribute(
	ctx context.Context,
	form contribution.SubmitInput,
) (action.Result, error) {
	res, err := c.act(ctx, "contribute", form)
	if err != nil {
		return action.Result{}, err
	}
	return res.public(), nil
}

func (c *Client) AddMartyr(
	ctx context.Context,
	form contribution.AddMartyrInput,
) (action.Result, error) {
	res, err := c.act(ctx, "add-martyr", form)
	if err != nil {
		return action.Result{}, err
	}
	return res.public(), nil
}

func (c *Client) ListMartyrs(
	ctx context.Context,
	limit, offset *int,
) ([]martyr.MartyrResponse, error) {
	q := url.Values{}
	if limit != nil {
		q.Set("limit", strconv.Itoa(*limit))
	}
	if offset != nil {
		q.Set("offset", strconv.Itoa(*offset))
	}

	path := "/v1/martyrs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []martyr.MartyrResponse
	if _, err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchMartyrs(ctx context.Context, query string) ([]martyr.MartyrResponse, error) {
	var out []martyr.MartyrResponse
	path := "/v1/martyrs/search?q=" + url.QueryEscape(query)
	if _, err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMartyr returns nil, nil when the record does not exist.
func (c *Client) GetMartyr(ctx context.Context, id string) (*martyr.MartyrResponse, error) {
	var out martyr.MartyrResponse
	found, err := c.call(ctx, http.MethodGet, "/v1/martyrs/"+url.PathEscape(id), nil, &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PendingContributions(
	ctx context.Context,
	page, pageSize int,
) ([]contribution.ContributionResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out []contribution.ContributionResponse
	if _, err := c.call(ctx, http.MethodGet, "/v1/contributions/pending?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Approve(
	ctx context.Context,
	id string,
	notes *string,
) (*contribution.ContributionResponse, error) {
	return c.review(ctx, id, "approve", notes)
}

func (c *Client) Reject(
	ctx context.Context,
	id string,
	notes *string,
) (*contribution.ContributionResponse, error) {
	return c.review(ctx, id, "reject", notes)
}

func (c *Client) review(
	ctx context.Context,
	id, verb string,
	notes *string,
) (*contribution.ContributionResponse, error) {
	var out contribution.ContributionResponse
	path := "/v1/contributions/" + url.PathEscape(id) + "/" + verb

	found, err := c.call(ctx, http.MethodPost, path, contribution.ReviewRequest{Notes: notes}, &out)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "contribution not found"}
	}
	return &out, nil
}

// Health returns the raw health document; an unhealthy server is not an
// error here.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("apiclient: decode health: %w", err)
	}
	return doc, nil
}
