package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*gin.Engine, *Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	srv := New(nil, nil, 0, 0)
	srv.Routes(engine)
	return engine, srv
}

func TestHandleRenderSuccess(t *testing.T) {
	engine, _ := newTestServer(t)

	body := strings.NewReader(`{"source":"# hi\n"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/render", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "<h1>hi</h1>\n", resp.HTML)
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleRenderRejectsEmptySource(t *testing.T) {
	engine, _ := newTestServer(t)

	body := strings.NewReader(`{"source":""}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/render", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPerClientLimiter(t *testing.T) {
	l := newPerClientLimiter(1, 1)
	assert.True(t, l.allow("1.2.3.4"))
	assert.False(t, l.allow("1.2.3.4"))
	assert.True(t, l.allow("5.6.7.8"), "separate client has its own bucket")
}

func TestNilLimiterAllowsEverything(t *testing.T) {
	var l *perClientLimiter
	assert.True(t, l.allow("anyone"))
}
