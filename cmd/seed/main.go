// Seeds the database with sample books and users for quick manual testing.
package main

import (
	"context"
	"log"

	"github.com/RoyPushkar-kun/Library-Management-System/config"
	"github.com/RoyPushkar-kun/Library-Management-System/db"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	store := db.NewStore(db.ConnectDB(cfg))
	catalog := library.NewCatalog(store)
	directory := library.NewDirectory(store)
	ctx := context.Background()

	if n, err := store.CountBooks(ctx); err != nil {
		log.Fatalf("count books: %v", err)
	} else if n == 0 {
		books := []library.AddBookInput{
			{Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", TotalCopies: 3},
			{Title: "Introduction to Algorithms", Author: "Cormen et al", ISBN: "9780262033848", TotalCopies: 2},
			{Title: "Design Patterns", Author: "Gamma et al", ISBN: "9780201633610", TotalCopies: 2},
		}
		for _, in := range books {
			if _, err := catalog.AddBook(ctx, in); err != nil {
				log.Fatalf("seed book %q: %v", in.Title, err)
			}
		}
	}

	if n, err := store.CountUsers(ctx); err != nil {
		log.Fatalf("count users: %v", err)
	} else if n == 0 {
		for _, name := range []string{"Alice", "Bob", "Charlie"} {
			if _, err := directory.AddUser(ctx, library.AddUserInput{Name: name}); err != nil {
				log.Fatalf("seed user %q: %v", name, err)
			}
		}
	}

	log.Println("Seeded sample data.")
}
