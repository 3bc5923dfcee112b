package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	board "auction-board/internal/boardService"
	"auction-board/internal/catalog"
	"auction-board/internal/metrics"
	"auction-board/internal/server"
	"auction-board/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full stack on a seeded catalog and the given store.
// A nil store gets a fresh in-memory one.
func SetupTestRouter(t *testing.T, s store.Store) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if s == nil {
		s = store.NewMemoryStore()
	}
	service := board.NewBoardService(catalog.NewSeededCatalog(time.Now()), s)

	registry := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(registry))
	s.Subscribe(m.ObserveEvent)

	router, err := server.SetupRouter(service, server.Options{Metrics: m, Gatherer: registry})
	require.NoError(t, err)
	return router, s
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and decodes the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := ExecuteRequest(router, method, url, reqBody)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}
