package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Success path
// ============================================

func TestClient_Get_DecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
	}))
	defer server.Close()

	client := New(server.URL)

	var out []map[string]any
	err := client.Get(context.Background(), "/api/products", &out)

	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0]["id"])
}

func TestClient_Post_SendsJSONBody(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		received = string(buf)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(server.URL)

	var out map[string]any
	err := client.Post(context.Background(), "/api/orders", map[string]string{"id": "o1"}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"o1"}`, received)
	assert.Equal(t, true, out["ok"])
}

func TestClient_EmptyBodyIsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)

	var out map[string]any
	err := client.Get(context.Background(), "/api/health", &out)

	require.NoError(t, err)
	assert.Nil(t, out)
}

// ============================================
// Error taxonomy
// ============================================

func TestClient_Non2xx_JSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid payload"}`))
	}))
	defer server.Close()

	client := New(server.URL)

	err := client.Get(context.Background(), "/api/products", nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "invalid payload", httpErr.Message)
	assert.JSONEq(t, `{"message":"invalid payload"}`, string(httpErr.Body))
}

func TestClient_Non2xx_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := New(server.URL)

	err := client.Get(context.Background(), "/api/products", nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "HTTP 500: Internal Server Error", httpErr.Message)
	assert.Equal(t, "<html>oops</html>", string(httpErr.Body))
}

func TestClient_Non2xx_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)

	err := client.Get(context.Background(), "/api/products/missing", nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "HTTP 404: Not Found", httpErr.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	// Nothing listens on this port
	client := New("http://127.0.0.1:1")

	err := client.Get(context.Background(), "/api/products", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr), "network failures must not carry an HTTP status")
}

// ============================================
// Health
// ============================================

func TestClient_Health(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"200 with body", http.StatusOK, `{"status":"ok"}`, false},
		{"204 empty body", http.StatusNoContent, "", false},
		{"503 unhealthy", http.StatusServiceUnavailable, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/health", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := New(server.URL).Health(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
