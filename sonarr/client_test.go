package sonarr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a mock Sonarr server and returns a connected client.
// The connection test against /api/system/status is answered automatically;
// everything else is routed to handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/system/status" && r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(map[string]interface{}{"version": "2.0.0.5344"})
			return
		}
		if handler == nil {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: "http://localhost:8989",
			apiKey:  "test-key",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "URL is required",
		},
		{
			name:    "missing API key",
			baseURL: "http://localhost:8989",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				_, err := NewClient(tt.baseURL, tt.apiKey, logger)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/system/status", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
				json.NewEncoder(w).Encode(map[string]interface{}{"version": "2.0.0.5344"})
			}))
			defer server.Close()

			client, err := NewClient(server.URL, tt.apiKey, logger)
			require.NoError(t, err)
			assert.NotNil(t, client)
			assert.Equal(t, server.URL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"version": "2.0.0.5344"})
	}))
	defer server.Close()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(server.URL, "test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(server.URL, "test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient(server.URL, "test-key", logger, WithUserAgent("gosonarr/test"))
		require.NoError(t, err)
		assert.Equal(t, "gosonarr/test", client.userAgent)
	})
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "NotFound", http.StatusNotFound)
	})

	_, err := client.GetSeries(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsUnauthorized())
}

func TestUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "bad-key", zerolog.Nop())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsUnauthorized())
}

func TestGetSystemStatus(t *testing.T) {
	client := newTestClient(t, nil)

	status, err := client.GetSystemStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0.5344", status.Version)
}
