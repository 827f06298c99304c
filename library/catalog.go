package library

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

// Catalog owns book records and their copy counts. It is the only path
// through which copies enter or leave circulation.
type Catalog struct {
	books BookStore
}

func NewCatalog(books BookStore) *Catalog { return &Catalog{books: books} }

type AddBookInput struct {
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

func (c *Catalog) AddBook(ctx context.Context, in AddBookInput) (*models.Book, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &InvalidInputError{Field: "title", Reason: "must not be empty"}
	}
	if in.TotalCopies < 1 {
		return nil, &InvalidInputError{Field: "totalCopies", Reason: "must be at least 1"}
	}
	b := &models.Book{
		ID:              uuid.NewString(),
		Title:           title,
		Author:          strings.TrimSpace(in.Author),
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
	}
	if isbn := strings.TrimSpace(in.ISBN); isbn != "" {
		b.ISBN = &isbn
	}
	if err := c.books.CreateBook(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*models.Book, error) {
	return c.books.GetBook(ctx, id)
}

func (c *Catalog) List(ctx context.Context) ([]models.Book, error) {
	return c.books.ListBooks(ctx)
}

// Resize models copies added to or removed from circulation without
// reconciling in-flight issues one by one.
func (c *Catalog) Resize(ctx context.Context, id string, newTotal int) (*models.Book, error) {
	if newTotal < 0 {
		return nil, &InvalidInputError{Field: "totalCopies", Reason: "must not be negative"}
	}
	return c.books.ResizeBook(ctx, id, newTotal)
}

// ReserveCopy takes one copy off the shelf for a new issue.
func (c *Catalog) ReserveCopy(ctx context.Context, id string) error {
	return c.books.ReserveCopy(ctx, id)
}

// ReleaseCopy puts a copy back on the shelf after a return.
func (c *Catalog) ReleaseCopy(ctx context.Context, id string) error {
	return c.books.ReleaseCopy(ctx, id)
}

func (c *Catalog) Remove(ctx context.Context, id string) error {
	return c.books.DeleteBook(ctx, id)
}
