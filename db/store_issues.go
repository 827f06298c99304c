package db

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

func (s *Store) CreateIssue(ctx context.Context, i *models.Issue) error {
	return s.DB.WithContext(ctx).Create(i).Error
}

func (s *Store) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	var i models.Issue
	if err := s.DB.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "issue", id)
	}
	return &i, nil
}

func (s *Store) ListIssues(ctx context.Context, f library.IssueFilter) ([]models.Issue, error) {
	q := s.DB.WithContext(ctx).Model(&models.Issue{}).Order("issue_date DESC")
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.BookID != "" {
		q = q.Where("book_id = ?", f.BookID)
	}
	switch f.Status {
	case library.StatusOpen:
		q = q.Where("return_date IS NULL")
	case library.StatusReturned:
		q = q.Where("return_date IS NOT NULL")
	}
	var issues []models.Issue
	if err := q.Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

// CloseIssue locks the row, re-checks the open state and stamps the
// return. A concurrent double return loses the lock race and fails here.
func (s *Store) CloseIssue(ctx context.Context, id string, returnDate time.Time, fine decimal.Decimal) (*models.Issue, error) {
	var i models.Issue
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&i, "id = ?", id).Error; err != nil {
			return notFound(err, "issue", id)
		}
		if i.ReturnDate != nil {
			return &library.AlreadyReturnedError{IssueID: id}
		}
		rd := returnDate.UTC()
		i.ReturnDate = &rd
		i.FinePaid = fine
		return tx.Save(&i).Error
	})
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Store) CountOpenIssues(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Issue{}).
		Where("return_date IS NULL").
		Count(&n).Error
	return n, err
}

func (s *Store) CountOpenIssuesDueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Issue{}).
		Where("return_date IS NULL AND due_date < ?", cutoff).
		Count(&n).Error
	return n, err
}

func (s *Store) SumFines(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.WithContext(ctx).Model(&models.Issue{}).
		Select("COALESCE(SUM(fine_paid), 0)").
		Row().Scan(&total)
	return total, err
}
