// models/issue.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const IssueTable = "issues"

// Issue is one borrowing of one copy. ReturnDate nil means the copy is
// still out; once set the issue is closed for good and FinePaid is final.
type Issue struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string          `gorm:"type:uuid;index;not null" json:"userId"`
	BookID     string          `gorm:"type:uuid;index;not null" json:"bookId"`
	IssueDate  time.Time       `gorm:"index;not null" json:"issueDate"`
	DueDate    time.Time       `gorm:"not null" json:"dueDate"`
	ReturnDate *time.Time      `gorm:"index" json:"returnDate,omitempty"`
	FinePaid   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"finePaid"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (Issue) TableName() string { return IssueTable }

// Open reports whether the copy is still out.
func (i *Issue) Open() bool { return i.ReturnDate == nil }
