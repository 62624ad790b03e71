// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and schema creation
//	└── books/           # Book CRUD operations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./books.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetBookByID(ctx, 123)
//
// # Interface Implementations
//
// Each sub-package implements the store interface of its HTTP controller:
//
//   - books.Repository: implements http.BookStore
//
// Compile-time checks for these implementations live in internal/interfaces.
package database
