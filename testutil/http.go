package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// RecordedRequest captures what the server under test received, for
// asserting on method, path, headers and body after the call returns.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// JSONServer starts an httptest server that answers every request with the
// given status and JSON-encoded body, recording the last request seen.
func JSONServer(t *testing.T, status int, body any) (*httptest.Server, *RecordedRequest) {
	t.Helper()

	recorded := &RecordedRequest{
		Method: "",
		Path:   "",
		Header: nil,
		Body:   nil,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.Header = r.Header.Clone()
		recorded.Body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

// RawServer is JSONServer for responses that are deliberately not JSON.
func RawServer(t *testing.T, status int, body string) (*httptest.Server, *RecordedRequest) {
	t.Helper()

	recorded := &RecordedRequest{
		Method: "",
		Path:   "",
		Header: nil,
		Body:   nil,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.Header = r.Header.Clone()
		recorded.Body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, recorded
}
