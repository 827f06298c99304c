package library

import (
	"errors"
	"fmt"
)

// Every failure the core can produce is one of the typed errors below.
// Callers match them with errors.As (or the Is* helpers); the transport
// layer owns the translation to HTTP statuses.

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Entity, e.ID) }

// UnavailableError means a book exists but has no free copies.
type UnavailableError struct {
	BookID string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("book %s has no available copies", e.BookID)
}

// InactiveError means a deactivated user tried to borrow.
type InactiveError struct {
	UserID string
}

func (e *InactiveError) Error() string { return fmt.Sprintf("user %s is not active", e.UserID) }

type AlreadyReturnedError struct {
	IssueID string
}

func (e *AlreadyReturnedError) Error() string {
	return fmt.Sprintf("issue %s is already returned", e.IssueID)
}

// InUseError blocks deleting an entity that still has open issues.
type InUseError struct {
	Entity string
	ID     string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %s has open issues", e.Entity, e.ID)
}

// ConflictError covers uniqueness violations and release-beyond-capacity,
// i.e. a return without a matching reservation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsUnavailable(err error) bool {
	var e *UnavailableError
	return errors.As(err, &e)
}

func IsInactive(err error) bool {
	var e *InactiveError
	return errors.As(err, &e)
}

func IsAlreadyReturned(err error) bool {
	var e *AlreadyReturnedError
	return errors.As(err, &e)
}

func IsInUse(err error) bool {
	var e *InUseError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}
