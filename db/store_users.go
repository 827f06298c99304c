package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &library.ConflictError{Reason: "email already exists"}
	}
	return err
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).Order("name").Find(&users).Error
	return users, err
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":      u.Name,
			"email":     u.Email,
			"is_active": u.IsActive,
		})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return &library.ConflictError{Reason: "email already exists"}
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &library.NotFoundError{Entity: "user", ID: u.ID}
	}
	return nil
}

func (s *Store) SetUserActive(ctx context.Context, id string, active bool) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &library.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", id).Error; err != nil {
			return notFound(err, "user", id)
		}
		var n int64
		if err := tx.Model(&models.Issue{}).
			Where("user_id = ? AND return_date IS NULL", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &library.InUseError{Entity: "user", ID: id}
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
