package apiclient

import "context"

type authKind int

const (
	// authDefault resolves to the client's token provider when one is
	// configured, otherwise no Authorization header is sent.
	authDefault authKind = iota
	authNone
	authBasic
	authBearer
)

type AuthMode struct {
	kind  authKind
	token string
}

func None() AuthMode {
	return AuthMode{kind: authNone, token: ""}
}

// Basic authorizes with the client's encoded client_id:client_secret pair.
func Basic() AuthMode {
	return AuthMode{kind: authBasic, token: ""}
}

func Bearer(token string) AuthMode {
	return AuthMode{kind: authBearer, token: token}
}

type staticTokenProvider string

// StaticTokenProvider wraps an already-issued access token so it can be
// installed with WithTokenProvider.
func StaticTokenProvider(token string) TokenProvider {
	return staticTokenProvider(token)
}

func (s staticTokenProvider) GetToken(_ context.Context) (string, error) {
	return string(s), nil
}

func (s staticTokenProvider) InvalidateToken() {}
