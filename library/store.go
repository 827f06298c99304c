package library

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

// The store interfaces are the persistence boundary the core consumes.
// Each mutating method is atomic with respect to the row it touches:
// concurrent ReserveCopy calls on the last copy must yield exactly one
// winner, and concurrent CloseIssue calls exactly one closer. The guarded
// deletes check for open issues inside the same critical section as the
// delete itself. Implementations return the typed errors of this package.

type BookStore interface {
	CreateBook(ctx context.Context, b *models.Book) error
	GetBook(ctx context.Context, id string) (*models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	// ResizeBook sets total_copies to newTotal and shifts available_copies
	// by the same delta, clamped to [0, newTotal].
	ResizeBook(ctx context.Context, id string, newTotal int) (*models.Book, error)
	// ReserveCopy decrements available_copies iff it is positive.
	ReserveCopy(ctx context.Context, id string) error
	// ReleaseCopy increments available_copies iff below total_copies;
	// at capacity it fails with Conflict rather than clamping.
	ReleaseCopy(ctx context.Context, id string) error
	// DeleteBook fails with InUse while open issues reference the book.
	DeleteBook(ctx context.Context, id string) error
	CountBooks(ctx context.Context) (int64, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	SetUserActive(ctx context.Context, id string, active bool) error
	// DeleteUser fails with InUse while open issues reference the user.
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
}

// IssueFilter narrows ListIssues. Zero values mean "any".
type IssueFilter struct {
	UserID string
	BookID string
	Status string // "", StatusOpen or StatusReturned
}

const (
	StatusOpen     = "open"
	StatusReturned = "returned"
)

type IssueStore interface {
	CreateIssue(ctx context.Context, i *models.Issue) error
	GetIssue(ctx context.Context, id string) (*models.Issue, error)
	ListIssues(ctx context.Context, f IssueFilter) ([]models.Issue, error)
	// CloseIssue stamps return_date and fine_paid iff the issue is still
	// open; a closed issue fails with AlreadyReturned.
	CloseIssue(ctx context.Context, id string, returnDate time.Time, fine decimal.Decimal) (*models.Issue, error)
	CountOpenIssues(ctx context.Context) (int64, error)
	CountOpenIssuesDueBefore(ctx context.Context, cutoff time.Time) (int64, error)
	SumFines(ctx context.Context) (decimal.Decimal, error)
}

// Store is the full persistence surface; both the memory and the
// Postgres implementations satisfy it.
type Store interface {
	BookStore
	UserStore
	IssueStore
}

// DateLayout is the wire format for explicit return dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value, reporting failures as InvalidInput.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: field, Reason: "expected a YYYY-MM-DD date"}
	}
	return t, nil
}
