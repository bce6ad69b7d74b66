package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoinfo/pkg/clientip"
	"github.com/dmitrymomot/geoinfo/pkg/geoinfo"
	"github.com/dmitrymomot/geoinfo/pkg/logger"
	"github.com/dmitrymomot/geoinfo/pkg/metrics"
	"github.com/dmitrymomot/geoinfo/pkg/session"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	registry := prometheus.NewRegistry()
	collector, err := metrics.New(registry)
	require.NoError(t, err)

	table := geoinfo.NewTable()
	require.NoError(t, table.Add("81.2.69.0/24", "GB"))
	require.NoError(t, table.Add("8.8.8.0/24", "US"))

	resolver := clientip.New(clientip.DefaultConfig(), clientip.WithMetrics(collector))
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	sessions := session.New(session.WithStore(store))

	return newRouter(routerDeps{
		logger:   logger.Discard(),
		resolver: resolver,
		sessions: sessions,
		annotator: geoinfo.NewAnnotator(resolver, table,
			geoinfo.WithMetrics(collector),
			geoinfo.WithSaver(sessions),
		),
		metrics: metrics.Handler(registry),
	})
}

func whereamiRequest(t *testing.T, h http.Handler, forwardedFor string, cookies []*http.Cookie) (whereamiResponse, []*http.Cookie) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/whereami", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp whereamiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp, rec.Result().Cookies()
}

func TestWhereami(t *testing.T) {
	t.Parallel()

	h := testRouter(t)

	resp, cookies := whereamiRequest(t, h, "10.0.0.1, 81.2.69.160", nil)
	assert.Equal(t, whereamiResponse{IP: "81.2.69.160", CountryCode: "GB"}, resp)
	require.NotEmpty(t, cookies)

	resp, _ = whereamiRequest(t, h, "8.8.8.8", cookies)
	assert.Equal(t, whereamiResponse{IP: "8.8.8.8", CountryCode: "US"}, resp)

	resp, _ = whereamiRequest(t, h, "192.168.1.10", cookies)
	assert.Equal(t, "192.168.1.10", resp.IP)
	assert.Empty(t, resp.CountryCode)
}

func TestWhereami_FallbackToRemoteAddr(t *testing.T) {
	t.Parallel()

	resp, _ := whereamiRequest(t, testRouter(t), "", nil)
	// httptest requests come from 192.0.2.1, which is documentation space.
	assert.Equal(t, whereamiResponse{IP: "192.0.2.1"}, resp)
}

func TestHealthzAndMetrics(t *testing.T) {
	t.Parallel()

	h := testRouter(t)
	whereamiRequest(t, h, "8.8.8.8", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `client_ip_resolution_total{source="field"} 1`)
	assert.Contains(t, rec.Body.String(), `geoinfo_annotations_total{outcome="updated"} 1`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	_, ok := parseLevel("")
	assert.False(t, ok)
	_, ok = parseLevel("loud")
	assert.False(t, ok)

	level, ok := parseLevel("debug")
	require.True(t, ok)
	assert.Equal(t, "DEBUG", level.String())
}
