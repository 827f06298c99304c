package library

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

// Directory owns user records and their active flag.
type Directory struct {
	users UserStore
}

func NewDirectory(users UserStore) *Directory { return &Directory{users: users} }

type AddUserInput struct {
	Name  string
	Email string
}

func (d *Directory) AddUser(ctx context.Context, in AddUserInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	u := &models.User{
		ID:             uuid.NewString(),
		Name:           name,
		IsActive:       true,
		MembershipDate: time.Now().UTC(),
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		u.Email = &email
	}
	if err := d.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (d *Directory) Get(ctx context.Context, id string) (*models.User, error) {
	return d.users.GetUser(ctx, id)
}

func (d *Directory) List(ctx context.Context) ([]models.User, error) {
	return d.users.ListUsers(ctx)
}

type UpdateUserInput struct {
	Name  string
	Email string
}

func (d *Directory) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	u, err := d.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	u.Name = name
	if email := strings.TrimSpace(in.Email); email != "" {
		u.Email = &email
	} else {
		u.Email = nil
	}
	if err := d.users.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (d *Directory) SetActive(ctx context.Context, id string, active bool) error {
	return d.users.SetUserActive(ctx, id, active)
}

func (d *Directory) Remove(ctx context.Context, id string) error {
	return d.users.DeleteUser(ctx, id)
}
