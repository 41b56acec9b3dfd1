package user_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyle182810/signkit/apiclient"
	"github.com/andyle182810/signkit/testutil"
	"github.com/andyle182810/signkit/user"
)

func newTestService(t *testing.T, baseURL string, opts ...apiclient.Option) *user.Service {
	t.Helper()

	cfg := apiclient.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Sandbox:      true,
	}

	allOpts := append([]apiclient.Option{apiclient.WithBaseURL(baseURL)}, opts...)

	api, err := apiclient.New(cfg, allOpts...)
	require.NoError(t, err)

	return user.New(api)
}

func basicCredentials() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte("test-client:test-secret"))
}

func TestCreate_PostsToUserWithBasicAuth(t *testing.T) {
	t.Parallel()

	server, recorded := testutil.JSONServer(t, http.StatusCreated, map[string]any{
		"id":       "user-1",
		"verified": 0,
		"email":    "new@example.com",
	})

	svc := newTestService(t, server.URL)

	resp, err := svc.Create(context.Background(), user.CreateRequest{
		Email:     "new@example.com",
		Password:  "secret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/user", recorded.Path)
	assert.Equal(t, basicCredentials(), recorded.Header.Get("Authorization"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal(recorded.Body, &sent))
	assert.Equal(t, "new@example.com", sent["email"])
	assert.Equal(t, "Ada", sent["first_name"])
}

func TestRetrieve_GetsUserWithBearerToken(t *testing.T) {
	t.Parallel()

	server, recorded := testutil.JSONServer(t, http.StatusOK, map[string]any{
		"id":            "user-1",
		"first_name":    "Ada",
		"last_name":     "Lovelace",
		"active":        1,
		"verified":      1,
		"emails":        []string{"ada@example.com"},
		"primary_email": "ada@example.com",
	})

	svc := newTestService(t, server.URL,
		apiclient.WithTokenProvider(apiclient.StaticTokenProvider("access-1")))

	details, err := svc.Retrieve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", details.ID)
	assert.Equal(t, "ada@example.com", details.PrimaryEmail)

	assert.Equal(t, http.MethodGet, recorded.Method)
	assert.Equal(t, "/user", recorded.Path)
	assert.Equal(t, "Bearer access-1", recorded.Header.Get("Authorization"))
}

func TestVerifyEmail_PostsAddressWithBasicAuth(t *testing.T) {
	t.Parallel()

	email := testutil.RandomEmail()

	server, recorded := testutil.JSONServer(t, http.StatusOK, map[string]string{"status": "success"})

	svc := newTestService(t, server.URL)

	resp, err := svc.VerifyEmail(context.Background(), email)

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/user/verifyemail", recorded.Path)
	assert.Equal(t, basicCredentials(), recorded.Header.Get("Authorization"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal(recorded.Body, &sent))
	assert.Equal(t, email, sent["email"])
}

func TestDisableSignatureReturn_PutsSettingWithBearerToken(t *testing.T) {
	t.Parallel()

	server, recorded := testutil.JSONServer(t, http.StatusOK, map[string]string{"status": "success"})

	svc := newTestService(t, server.URL,
		apiclient.WithTokenProvider(apiclient.StaticTokenProvider("access-1")))

	resp, err := svc.DisableSignatureReturn(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)

	assert.Equal(t, http.MethodPut, recorded.Method)
	assert.Equal(t, "/user/setting/no_user_signature_return", recorded.Path)
	assert.Equal(t, "Bearer access-1", recorded.Header.Get("Authorization"))
}

func TestCreate_SurfacesAPIError(t *testing.T) {
	t.Parallel()

	server, _ := testutil.JSONServer(t, http.StatusConflict, map[string]string{
		"error": "email_already_exists",
	})

	svc := newTestService(t, server.URL)

	_, err := svc.Create(context.Background(), user.CreateRequest{
		Email:     "taken@example.com",
		Password:  "secret",
		FirstName: "",
		LastName:  "",
	})

	apiErr, ok := apiclient.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email_already_exists", apiErr.Message)
}
