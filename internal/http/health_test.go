package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The probes are built without any storage dependency on purpose: a
// broken database must not affect their answers.
func setupHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewHealthController()

	router := gin.New()
	router.GET("/health/liveness", controller.Liveness)
	router.GET("/health/readiness", controller.Readiness)
	return router
}

func TestHealthController_Liveness(t *testing.T) {
	router := setupHealthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health/liveness", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestHealthController_Readiness(t *testing.T) {
	router := setupHealthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health/readiness", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}
