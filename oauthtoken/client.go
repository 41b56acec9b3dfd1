package oauthtoken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/andyle182810/signkit/apiclient"
)

const (
	defaultTimeout = 10 * time.Second
	tokenPath      = "/oauth2/token"

	GrantPassword     = "password"
	GrantRefreshToken = "refresh_token"
)

var (
	ErrRequestFailed = errors.New("oauthtoken: token request failed")
	ErrNoAccessToken = errors.New("oauthtoken: no access token in response")
)

//nolint:tagliatelle // the service returns snake_case
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	LastLogin    int    `json:"last_login"`
}

// Client talks to the /oauth2/token endpoint. Token posts authorize with the
// Basic client_id:client_secret pair; verification uses the token itself.
type Client struct {
	baseURL     string
	credentials string
	restyClient *resty.Client
}

type Option func(*Client)

func New(cfg apiclient.Config, opts ...Option) *Client {
	client := &Client{
		baseURL:     cfg.BaseURL(),
		credentials: cfg.EncodedCredentials(),
		restyClient: createDefaultRestyClient(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *Client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.restyClient.SetTimeout(timeout)
	}
}

func createDefaultRestyClient() *resty.Client {
	return resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Accept", "application/json")
}

type RequestTokenOptions struct {
	Scope string
}

type RequestTokenOption func(*RequestTokenOptions)

func WithScope(scope string) RequestTokenOption {
	return func(opts *RequestTokenOptions) {
		opts.Scope = scope
	}
}

// RequestToken issues a password-grant token for the given account.
func (c *Client) RequestToken(ctx context.Context, username, password string, opts ...RequestTokenOption) (*TokenResponse, error) {
	options := &RequestTokenOptions{Scope: ""}

	for _, opt := range opts {
		opt(options)
	}

	formData := map[string]string{
		"grant_type": GrantPassword,
		"username":   username,
		"password":   password,
	}

	if options.Scope != "" {
		formData["scope"] = options.Scope
	}

	return c.postToken(ctx, formData)
}

// RefreshToken exchanges a refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string, opts ...RequestTokenOption) (*TokenResponse, error) {
	options := &RequestTokenOptions{Scope: ""}

	for _, opt := range opts {
		opt(options)
	}

	formData := map[string]string{
		"grant_type":    GrantRefreshToken,
		"refresh_token": refreshToken,
	}

	if options.Scope != "" {
		formData["scope"] = options.Scope
	}

	return c.postToken(ctx, formData)
}

// Verify asks the service whether an access token is still valid and returns
// the token's metadata when it is.
func (c *Client) Verify(ctx context.Context, accessToken string) (*TokenResponse, error) {
	var tokenResp TokenResponse

	var tokenErr apiclient.ErrorPayload

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader(apiclient.HeaderAuthorization, "Bearer "+accessToken).
		SetResult(&tokenResp).
		SetError(&tokenErr).
		Get(c.baseURL + tokenPath)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status=%d, error=%s, description=%s",
			ErrRequestFailed, resp.StatusCode(), tokenErr.Code, tokenErr.ErrorDescription)
	}

	return &tokenResp, nil
}

func (c *Client) postToken(ctx context.Context, formData map[string]string) (*TokenResponse, error) {
	var tokenResp TokenResponse

	var tokenErr apiclient.ErrorPayload

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader(apiclient.HeaderAuthorization, "Basic "+c.credentials).
		SetFormData(formData).
		SetResult(&tokenResp).
		SetError(&tokenErr).
		Post(c.baseURL + tokenPath)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status=%d, error=%s, description=%s",
			ErrRequestFailed, resp.StatusCode(), tokenErr.Code, tokenErr.ErrorDescription)
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	return &tokenResp, nil
}
