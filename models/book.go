// models/book.go
package models

import "time"

const BookTable = "books"

// Book is one title in the catalog; copies are counted, not tracked
// individually. available_copies counts the copies currently on the shelf.
type Book struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255" json:"author,omitempty"`
	ISBN            *string   `gorm:"size:50;uniqueIndex" json:"isbn,omitempty"`
	TotalCopies     int       `gorm:"not null;default:1;check:total_copies >= 0" json:"totalCopies"`
	AvailableCopies int       `gorm:"not null;default:1;check:available_copies >= 0 AND available_copies <= total_copies" json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return BookTable }
