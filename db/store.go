package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

// Store implements the library store interfaces on GORM/Postgres.
// Row-level serialization: reserve/release are single conditional
// UPDATEs (exactly one winner under contention), close/resize/delete
// take a SELECT ... FOR UPDATE row lock inside a transaction.
type Store struct {
	DB *gorm.DB
}

var _ library.Store = (*Store)(nil)

func NewStore(conn *gorm.DB) *Store { return &Store{DB: conn} }

// notFound maps gorm's record-not-found onto the core taxonomy.
func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &library.NotFoundError{Entity: entity, ID: id}
	}
	return err
}
