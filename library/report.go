package library

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyPushkar-kun/Library-Management-System/fines"
)

// Summary is the circulation dashboard: totals plus the open issues whose
// due date (at day granularity) has already passed.
type Summary struct {
	Books         int64           `json:"books"`
	Users         int64           `json:"users"`
	OpenIssues    int64           `json:"openIssues"`
	OverdueIssues int64           `json:"overdueIssues"`
	TotalFines    decimal.Decimal `json:"totalFines"`
}

// ReportEngine is a read-only aggregator; it never mutates anything.
type ReportEngine struct {
	books  BookStore
	users  UserStore
	issues IssueStore
}

func NewReportEngine(books BookStore, users UserStore, issues IssueStore) *ReportEngine {
	return &ReportEngine{books: books, users: users, issues: issues}
}

func (r *ReportEngine) Summarize(ctx context.Context) (*Summary, error) {
	s := &Summary{}
	var err error
	if s.Books, err = r.books.CountBooks(ctx); err != nil {
		return nil, err
	}
	if s.Users, err = r.users.CountUsers(ctx); err != nil {
		return nil, err
	}
	if s.OpenIssues, err = r.issues.CountOpenIssues(ctx); err != nil {
		return nil, err
	}
	// due_date strictly before today's date == due_date before today's
	// midnight UTC.
	cutoff := fines.DayStartUTC(time.Now())
	if s.OverdueIssues, err = r.issues.CountOpenIssuesDueBefore(ctx, cutoff); err != nil {
		return nil, err
	}
	if s.TotalFines, err = r.issues.SumFines(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
