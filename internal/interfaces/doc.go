// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
//   - BookStore: book persistence operations (internal/http/books.go)
//
// Store interfaces are declared next to the controller that consumes them,
// and implemented by the repositories under internal/database.
//
// # Compile-Time Interface Checks
//
// All implementations include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather
// than runtime:
//
//	var _ http.BookStore = (*books.Repository)(nil)
//
// See checks.go for the full list.
package interfaces
