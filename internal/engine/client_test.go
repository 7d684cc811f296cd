package engine_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontypehq/timbre/internal/engine"
)

func TestClientHealth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"version":       "0.3.1",
			"loaded_models": []string{engine.ModelCustomLarge},
		})
	}))
	defer srv.Close()

	st, err := engine.NewClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0.3.1", st.Version)
	require.Equal(t, []string{engine.ModelCustomLarge}, st.LoadedModels)
}

func TestClientHealthDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := engine.NewClient(srv.URL).Health(context.Background())
	require.Error(t, err)
}

func TestClientLoadModel(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/models/load", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	}))
	defer srv.Close()

	err := engine.NewClient(srv.URL).LoadModel(context.Background(), engine.ModelDesign)
	require.NoError(t, err)
	require.Equal(t, engine.ModelDesign, got["model"])
}

func TestClientLoadModelFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of memory", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := engine.NewClient(srv.URL).LoadModel(context.Background(), engine.ModelDesign)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of memory")
}
