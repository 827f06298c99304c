package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

func (s *Store) CreateBook(ctx context.Context, b *models.Book) error {
	err := s.DB.WithContext(ctx).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &library.ConflictError{Reason: "isbn already exists"}
	}
	return err
}

func (s *Store) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "book", id)
	}
	return &b, nil
}

func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := s.DB.WithContext(ctx).Order("title").Find(&books).Error
	return books, err
}

func (s *Store) ResizeBook(ctx context.Context, id string, newTotal int) (*models.Book, error) {
	var b models.Book
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", id).Error; err != nil {
			return notFound(err, "book", id)
		}
		avail := b.AvailableCopies + (newTotal - b.TotalCopies)
		if avail < 0 {
			avail = 0
		}
		if avail > newTotal {
			avail = newTotal
		}
		b.TotalCopies = newTotal
		b.AvailableCopies = avail
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ReserveCopy is a single conditional UPDATE: under contention on the
// last copy exactly one caller sees RowsAffected == 1.
func (s *Store) ReserveCopy(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ? AND available_copies > 0", id).
		UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetBook(ctx, id); err != nil {
			return err
		}
		return &library.UnavailableError{BookID: id}
	}
	return nil
}

func (s *Store) ReleaseCopy(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ? AND available_copies < total_copies", id).
		UpdateColumn("available_copies", gorm.Expr("available_copies + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetBook(ctx, id); err != nil {
			return err
		}
		return &library.ConflictError{Reason: "release without a matching reservation"}
	}
	return nil
}

func (s *Store) DeleteBook(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", id).Error; err != nil {
			return notFound(err, "book", id)
		}
		var n int64
		if err := tx.Model(&models.Issue{}).
			Where("book_id = ? AND return_date IS NULL", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &library.InUseError{Entity: "book", ID: id}
		}
		return tx.Delete(&models.Book{}, "id = ?", id).Error
	})
}

func (s *Store) CountBooks(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Book{}).Count(&n).Error
	return n, err
}
