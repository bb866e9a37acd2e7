package bazaar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soopyv/bazscan/pkg/config"
	"github.com/soopyv/bazscan/pkg/httputil"
	"github.com/soopyv/bazscan/pkg/logger"
)

func testClient(t *testing.T, endpoints []string) *Client {
	t.Helper()

	cfg := &config.Config{
		Env: "development",
		Bazaar: config.BazaarConfig{
			Endpoints:     endpoints,
			RatePerSecond: 1000,
			RateBurst:     10,
		},
	}

	httpClient := httputil.New(cfg, logger.NewNop()).DisableRetry()
	return NewClient(cfg, httpClient, logger.NewNop())
}

func TestClient_FetchFirstEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hypixelPayload))
	}))
	defer server.Close()

	client := testClient(t, []string{server.URL})

	snapshot, raw, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.NotEmpty(t, raw)
	assert.Equal(t, server.URL, snapshot.Source)
}

func TestClient_FallsBackToNextEndpoint(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hypixelPayload))
	}))
	defer good.Close()

	client := testClient(t, []string{bad.URL, good.URL})

	snapshot, _, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, good.URL, snapshot.Source)
}

func TestClient_SkipsUnparseableEndpoint(t *testing.T) {
	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer garbage.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hypixelPayload))
	}))
	defer good.Close()

	client := testClient(t, []string{garbage.URL, good.URL})

	snapshot, _, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, good.URL, snapshot.Source)
}

func TestClient_AllEndpointsFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	client := testClient(t, []string{bad.URL, bad.URL})

	_, _, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
