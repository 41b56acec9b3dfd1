package oauthtoken_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyle182810/signkit/apiclient"
	"github.com/andyle182810/signkit/oauthtoken"
	"github.com/andyle182810/signkit/testutil"
)

func testConfig() apiclient.Config {
	return apiclient.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Sandbox:      true,
	}
}

func testCredentials() string {
	return base64.StdEncoding.EncodeToString([]byte("test-client:test-secret"))
}

func TestRequestToken_SendsPasswordGrantForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "Basic "+testCredentials(), r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		// form encoding is alphabetical by key; '@' must arrive as %40
		assert.Equal(t, "grant_type=password&password=p&username=u%40x.com", string(body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "bearer",
			"expires_in":    3600,
			"scope":         "*",
		})
	}))
	defer server.Close()

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	resp, err := client.RequestToken(context.Background(), "u@x.com", "p")

	require.NoError(t, err)
	assert.Equal(t, "access-1", resp.AccessToken)
	assert.Equal(t, "refresh-1", resp.RefreshToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestRequestToken_SendsScopeWhenSet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		assert.NoError(t, err)
		assert.Equal(t, "user%", r.Form.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "access-1", "expires_in": 3600})
	}))
	defer server.Close()

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	_, err := client.RequestToken(context.Background(), "u@x.com", "p", oauthtoken.WithScope("user%"))

	require.NoError(t, err)
}

func TestRefreshToken_SendsRefreshGrantForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		assert.NoError(t, err)
		assert.Equal(t, oauthtoken.GrantRefreshToken, r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))
		assert.Empty(t, r.Form.Get("username"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
			"expires_in":    3600,
		})
	}))
	defer server.Close()

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	resp, err := client.RefreshToken(context.Background(), "refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "access-2", resp.AccessToken)
}

func TestRequestToken_ReturnsServiceErrorDetail(t *testing.T) {
	t.Parallel()

	server, _ := testutil.JSONServer(t, http.StatusBadRequest, map[string]string{
		"error":             "invalid_grant",
		"error_description": "Invalid user credentials",
	})

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	_, err := client.RequestToken(context.Background(), "u@x.com", "wrong")

	require.ErrorIs(t, err, oauthtoken.ErrRequestFailed)
	assert.Contains(t, err.Error(), "invalid_grant")
	assert.Contains(t, err.Error(), "Invalid user credentials")
}

func TestRequestToken_ReturnsErrorWhenAccessTokenMissing(t *testing.T) {
	t.Parallel()

	server, _ := testutil.JSONServer(t, http.StatusOK, map[string]any{"expires_in": 3600})

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	_, err := client.RequestToken(context.Background(), "u@x.com", "p")

	require.ErrorIs(t, err, oauthtoken.ErrNoAccessToken)
}

func TestVerify_SendsBearerHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-1",
			"token_type":   "bearer",
			"expires_in":   1800,
			"scope":        "*",
		})
	}))
	defer server.Close()

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	resp, err := client.Verify(context.Background(), "access-1")

	require.NoError(t, err)
	assert.Equal(t, 1800, resp.ExpiresIn)
}

func TestVerify_ReturnsErrorForRejectedToken(t *testing.T) {
	t.Parallel()

	server, _ := testutil.JSONServer(t, http.StatusUnauthorized, map[string]string{
		"error": "invalid_token",
	})

	client := oauthtoken.New(testConfig(), oauthtoken.WithBaseURL(server.URL))

	_, err := client.Verify(context.Background(), "expired")

	require.ErrorIs(t, err, oauthtoken.ErrRequestFailed)
	assert.Contains(t, err.Error(), "invalid_token")
}
