package http

import (
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mrlokans/bookstore/docs"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))
	router.Use(Recovery(cfg.Logger))

	// Create controllers with appropriate interfaces
	healthController := NewHealthController()
	booksController := NewBooksController(cfg.BookStore, cfg.Logger)

	// Health endpoints
	router.GET("/health/liveness", healthController.Liveness)
	router.GET("/health/readiness", healthController.Readiness)

	// Books API endpoints
	router.POST("/books/", booksController.CreateBook)
	router.GET("/books/:id", booksController.GetBook)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	// Interactive API documentation
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	)))

	return router
}
