package oauthtoken

import (
	"context"
	"sync"
	"time"

	"github.com/andyle182810/signkit/apiclient"
)

const tokenExpiryBuffer = 30 * time.Second

// CachedProvider keeps a password-grant token alive for the process,
// preferring the refresh_token grant once one has been issued. It satisfies
// apiclient.TokenProvider so resource clients inject the Bearer header
// automatically.
type CachedProvider struct {
	client   *Client
	username string
	password string

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

var _ apiclient.TokenProvider = (*CachedProvider)(nil)

func NewCachedProvider(client *Client, username, password string) *CachedProvider {
	return &CachedProvider{
		client:       client,
		username:     username,
		password:     password,
		mu:           sync.RWMutex{},
		accessToken:  "",
		refreshToken: "",
		expiresAt:    time.Time{},
	}
}

func (p *CachedProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	if p.accessToken != "" && time.Now().Before(p.expiresAt) {
		token := p.accessToken
		p.mu.RUnlock()

		return token, nil
	}
	p.mu.RUnlock()

	return p.refresh(ctx)
}

func (p *CachedProvider) refresh(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed)
	if p.accessToken != "" && time.Now().Before(p.expiresAt) {
		return p.accessToken, nil
	}

	var (
		resp *TokenResponse
		err  error
	)

	if p.refreshToken != "" {
		resp, err = p.client.RefreshToken(ctx, p.refreshToken)
	}

	if resp == nil || err != nil {
		resp, err = p.client.RequestToken(ctx, p.username, p.password)
		if err != nil {
			return "", err
		}
	}

	p.accessToken = resp.AccessToken
	p.refreshToken = resp.RefreshToken
	// Refresh before actual expiry to avoid edge cases
	p.expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn)*time.Second - tokenExpiryBuffer)

	return p.accessToken, nil
}

func (p *CachedProvider) InvalidateToken() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.accessToken = ""
	p.refreshToken = ""
	p.expiresAt = time.Time{}
}
