package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses a valid id", func(t *testing.T) {
		var (
			gotID uint
			gotOK bool
		)
		router := gin.New()
		router.GET("/books/:id", func(c *gin.Context) {
			gotID, gotOK = parseBookID(c)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/books/42", nil)
		router.ServeHTTP(w, req)

		require.True(t, gotOK)
		assert.Equal(t, uint(42), gotID)
	})

	t.Run("rejects a non-integer id with 422", func(t *testing.T) {
		router := gin.New()
		router.GET("/books/:id", func(c *gin.Context) {
			if _, ok := parseBookID(c); !ok {
				return
			}
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/books/not-a-number", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid book id")
	})

	t.Run("rejects a negative id with 422", func(t *testing.T) {
		router := gin.New()
		router.GET("/books/:id", func(c *gin.Context) {
			if _, ok := parseBookID(c); !ok {
				return
			}
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/books/-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestResponseHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("respondNotFound", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) {
			respondNotFound(c, "Book not found")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
	})

	t.Run("respondInternalError hides the cause", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) {
			respondInternalError(c)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
	})
}
