// Command seed populates a database file with sample books.
// Usage: go run cmd/seed/main.go [-db path/to/books.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/books"
	"github.com/mrlokans/bookstore/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	fresh := flag.Bool("fresh", false, "remove an existing database file first")
	flag.Parse()

	if *fresh {
		if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	log.Printf("Seeding database at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)
	ctx := context.Background()

	for _, book := range sampleBooks() {
		if err := repo.CreateBook(ctx, &book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Name, err)
			continue
		}
		log.Printf("Saved: %s by %s (id=%d)", book.Name, book.Author, book.ID)
	}

	log.Println("Database seeded successfully!")
}

func sampleBooks() []entities.Book {
	return []entities.Book{
		{
			Name:     "Dune",
			Author:   "Frank Herbert",
			ISBN:     9780441013593,
			Price:    15,
			Pages:    412,
			Language: "English",
		},
		{
			Name:     "The Hitchhiker's Guide to the Galaxy",
			Author:   "Douglas Adams",
			ISBN:     9780345391803,
			Price:    12,
			Pages:    224,
			Language: "English",
		},
		{
			Name:     "Frankenstein",
			Author:   "Mary Shelley",
			ISBN:     9780486282114,
			Price:    8,
			Pages:    166,
			Language: "English",
		},
		{
			Name:     "The Master and Margarita",
			Author:   "Mikhail Bulgakov",
			ISBN:     9780141180144,
			Price:    14,
			Pages:    432,
			Language: "Russian",
		},
		{
			Name:     "Le Petit Prince",
			Author:   "Antoine de Saint-Exupéry",
			ISBN:     9782070612758,
			Price:    10,
			Pages:    96,
			Language: "French",
		},
	}
}
