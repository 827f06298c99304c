package library

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RoyPushkar-kun/Library-Management-System/fines"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

// Ledger owns issue records and drives the borrow/return lifecycle.
// Copy counts are only ever touched through the Catalog reservation API.
type Ledger struct {
	catalog   *Catalog
	directory *Directory
	issues    IssueStore
	calc      fines.Calculator
}

func NewLedger(catalog *Catalog, directory *Directory, issues IssueStore, calc fines.Calculator) *Ledger {
	return &Ledger{catalog: catalog, directory: directory, issues: issues, calc: calc}
}

// IssueBook lends one copy of bookID to userID for loanDays. The copy
// reservation and the issue record form one unit: if the record cannot be
// created the copy goes back on the shelf before the error is returned.
func (l *Ledger) IssueBook(ctx context.Context, userID, bookID string, loanDays int) (*models.Issue, error) {
	if loanDays < 1 {
		return nil, &InvalidInputError{Field: "loanDays", Reason: "must be at least 1"}
	}
	u, err := l.directory.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, &InactiveError{UserID: userID}
	}
	if _, err := l.catalog.Get(ctx, bookID); err != nil {
		return nil, err
	}
	if err := l.catalog.ReserveCopy(ctx, bookID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	issue := &models.Issue{
		ID:        uuid.NewString(),
		UserID:    userID,
		BookID:    bookID,
		IssueDate: now,
		DueDate:   now.AddDate(0, 0, loanDays),
		FinePaid:  decimal.Zero,
	}
	if err := l.issues.CreateIssue(ctx, issue); err != nil {
		if relErr := l.catalog.ReleaseCopy(ctx, bookID); relErr != nil {
			return nil, errors.Join(err, relErr)
		}
		return nil, err
	}
	return issue, nil
}

// ReturnOptions carries the optional overrides of a return: a backdated
// return date and an explicit fine replacing the computed one.
type ReturnOptions struct {
	ReturnDate *time.Time
	Fine       *decimal.Decimal
}

// ReturnBook closes an open issue, records the fine and releases the copy.
// The fine is the calculator's amount unless an explicit one is supplied.
func (l *Ledger) ReturnBook(ctx context.Context, issueID string, opts ReturnOptions) (*models.Issue, error) {
	issue, err := l.issues.GetIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if !issue.Open() {
		return nil, &AlreadyReturnedError{IssueID: issueID}
	}
	returnDate := time.Now().UTC()
	if opts.ReturnDate != nil {
		returnDate = opts.ReturnDate.UTC()
	}
	fine := l.calc.CurrentFine(issue.DueDate, returnDate)
	if opts.Fine != nil {
		if opts.Fine.IsNegative() {
			return nil, &InvalidInputError{Field: "finePaid", Reason: "must not be negative"}
		}
		fine = *opts.Fine
	}
	// The store re-checks the open state, so a concurrent double return
	// loses here with AlreadyReturned and never releases a second copy.
	closed, err := l.issues.CloseIssue(ctx, issueID, returnDate, fine)
	if err != nil {
		return nil, err
	}
	if err := l.catalog.ReleaseCopy(ctx, closed.BookID); err != nil {
		return nil, err
	}
	return closed, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (*models.Issue, error) {
	return l.issues.GetIssue(ctx, id)
}

func (l *Ledger) List(ctx context.Context, f IssueFilter) ([]models.Issue, error) {
	return l.issues.ListIssues(ctx, f)
}
