package http

import (
	"go.uber.org/zap"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Book persistence
	BookStore BookStore

	// Logging
	Logger *zap.Logger
}
