package entities

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("book not found")

// Book represents a single book record.
type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"index;size:512" json:"name"`
	Author   string `gorm:"size:256" json:"author"`
	ISBN     int64  `json:"isbn"`
	Price    int    `json:"price"`
	Pages    int    `json:"pages"`
	Language string `gorm:"size:64" json:"language"`
}

// TableName specifies the table name for the Book model
func (Book) TableName() string {
	return "book"
}
