package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"train-console-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupRouter(RequestID())

	req, _ := http.NewRequest("GET", "/ping", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRequestIDHonorsIncoming(t *testing.T) {
	router := setupRouter(RequestID())

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "req-abc", recorder.Header().Get("X-Request-ID"))
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req, _ := http.NewRequest("GET", "/panic", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
	assert.NotContains(t, recorder.Body.String(), "boom")
}

func TestCORSAllowedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"*"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "http://anywhere.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
