package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/bookstore/internal/entities"
)

// BookStore defines the persistence operations used by BooksController.
type BookStore interface {
	CreateBook(ctx context.Context, book *entities.Book) error
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	UpdateBook(ctx context.Context, book *entities.Book) error
	DeleteBook(ctx context.Context, id uint) error
}

// BooksController serves the CRUD endpoints for book records.
type BooksController struct {
	store  BookStore
	logger *zap.Logger
}

func NewBooksController(store BookStore, logger *zap.Logger) *BooksController {
	return &BooksController{
		store:  store,
		logger: logger,
	}
}

// CreateBook stores a new book and returns it with its generated ID.
// POST /books/
func (controller *BooksController) CreateBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondUnprocessable(c, err.Error())
		return
	}

	// The ID is assigned by the database; a client-supplied one is discarded.
	book.ID = 0

	if err := controller.store.CreateBook(c.Request.Context(), &book); err != nil {
		controller.logger.Error("failed to create book", zap.Error(err))
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetBook returns a single book by its ID.
// GET /books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(c.Request.Context(), id)
	if errors.Is(err, entities.ErrNotFound) {
		// Capitalized on purpose: existing clients match the exact message,
		// which differs from the update and delete handlers.
		respondNotFound(c, "Book not found")
		return
	}
	if err != nil {
		controller.logger.Error("failed to get book", zap.Uint("book.id", id), zap.Error(err))
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateBook replaces every stored field of an existing book. Zero values
// in the payload overwrite stored values, and the path ID wins over any
// ID in the body.
// PUT /books/:id
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var payload entities.Book
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondUnprocessable(c, err.Error())
		return
	}

	book, err := controller.store.GetBookByID(c.Request.Context(), id)
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "book not found")
		return
	}
	if err != nil {
		controller.logger.Error("failed to get book for update", zap.Uint("book.id", id), zap.Error(err))
		respondInternalError(c)
		return
	}

	book.Name = payload.Name
	book.Author = payload.Author
	book.ISBN = payload.ISBN
	book.Price = payload.Price
	book.Pages = payload.Pages
	book.Language = payload.Language

	if err := controller.store.UpdateBook(c.Request.Context(), book); err != nil {
		controller.logger.Error("failed to update book", zap.Uint("book.id", id), zap.Error(err))
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book by its ID.
// DELETE /books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	err := controller.store.DeleteBook(c.Request.Context(), id)
	if errors.Is(err, entities.ErrNotFound) {
		respondNotFound(c, "book not found")
		return
	}
	if err != nil {
		controller.logger.Error("failed to delete book", zap.Uint("book.id", id), zap.Error(err))
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, DetailResponse{Detail: "book deleted"})
}
