package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/orgflow/internal/domain/mocks"
	"github.com/ersonp/orgflow/internal/domain/ports"
	"github.com/ersonp/orgflow/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.APIConfig{URL: server.URL, Key: "secret"}, opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(config.APIConfig{Key: "secret"})
	require.Error(t, err)

	_, err = NewClient(config.APIConfig{URL: "https://org.example.com"})
	require.Error(t, err)
}

func TestExecute_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/roles", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "5", r.URL.Query().Get("circle_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"roles": [{"id": 7, "name": "Lead Link"}]}`))
	})

	env, err := client.Execute(context.Background(), ports.Get, "roles", map[string]any{"circle_id": 5})
	require.NoError(t, err)

	records, err := env.Records("roles")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExecute_PostBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ship it", body["description"])

		w.Write([]byte(`{"projects": [{"id": 17}]}`))
	})

	env, err := client.Execute(context.Background(), ports.Post, "projects", map[string]any{"description": "Ship it"})
	require.NoError(t, err)
	assert.Contains(t, env, "projects")
}

func TestExecute_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	env, err := client.Execute(context.Background(), ports.Delete, "projects/17", nil)
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestExecute_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.Execute(context.Background(), ports.Get, "circles/999", nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Body, "not found")
}

func TestExecute_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Execute(context.Background(), ports.Get, "circles", nil)
	require.ErrorContains(t, err, "decoding response envelope")
}

func TestExecute_CacheWriteThrough(t *testing.T) {
	hits := 0
	store := mocks.NewResponseCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"circles": [{"id": 1}]}`))
	}, WithCache(store))

	for i := 0; i < 2; i++ {
		env, err := client.Execute(context.Background(), ports.Get, "circles", nil)
		require.NoError(t, err)
		records, err := env.Records("circles")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	}

	assert.Equal(t, 1, hits, "second GET must be served from cache")
	assert.Len(t, store.Entries, 1)
}

func TestExecute_CacheSkipsMutations(t *testing.T) {
	store := mocks.NewResponseCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects": [{"id": 17}]}`))
	}, WithCache(store))

	_, err := client.Execute(context.Background(), ports.Post, "projects", map[string]any{"description": "x"})
	require.NoError(t, err)
	assert.Empty(t, store.Entries)
}

func TestCacheKey_Canonical(t *testing.T) {
	a := cacheKey(ports.Get, "roles", map[string]any{"circle_id": 5, "role": "lead_link"})
	b := cacheKey(ports.Get, "roles", map[string]any{"role": "lead_link", "circle_id": 5})
	assert.Equal(t, a, b)

	c := cacheKey(ports.Get, "roles", map[string]any{"circle_id": 6})
	assert.NotEqual(t, a, c)
}
