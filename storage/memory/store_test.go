package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
	"github.com/RoyPushkar-kun/Library-Management-System/storage/memory"
)

func newBook(copies int) *models.Book {
	return &models.Book{
		ID:              uuid.NewString(),
		Title:           "T",
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
}

func TestStore_ReserveNeverOversells(t *testing.T) {
	const copies = 3
	const callers = 50

	store := memory.New()
	ctx := context.Background()
	b := newBook(copies)
	require.NoError(t, store.CreateBook(ctx, b))

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.ReserveCopy(ctx, b.ID)
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.True(t, library.IsUnavailable(err))
		}
	}
	assert.Equal(t, copies, ok)

	got, err := store.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableCopies)
}

func TestStore_ReleaseCappedAtTotal(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	b := newBook(2)
	require.NoError(t, store.CreateBook(ctx, b))

	require.NoError(t, store.ReserveCopy(ctx, b.ID))
	require.NoError(t, store.ReleaseCopy(ctx, b.ID))
	assert.True(t, library.IsConflict(store.ReleaseCopy(ctx, b.ID)))
}

func TestStore_CloseIssue_SingleWinner(t *testing.T) {
	const callers = 20

	store := memory.New()
	ctx := context.Background()
	now := time.Now().UTC()
	issue := &models.Issue{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		BookID:    uuid.NewString(),
		IssueDate: now,
		DueDate:   now.AddDate(0, 0, 7),
		FinePaid:  decimal.Zero,
	}
	require.NoError(t, store.CreateIssue(ctx, issue))

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CloseIssue(ctx, issue.ID, now, decimal.Zero)
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.True(t, library.IsAlreadyReturned(err))
		}
	}
	assert.Equal(t, 1, ok)
}

func TestStore_CopyIsolation(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	b := newBook(1)
	require.NoError(t, store.CreateBook(ctx, b))

	got, err := store.GetBook(ctx, b.ID)
	require.NoError(t, err)
	got.AvailableCopies = 99 // mutating the copy must not leak into the store

	again, err := store.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.AvailableCopies)
}

func TestStore_DuplicateEmail(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	email := "alice@example.com"
	require.NoError(t, store.CreateUser(ctx, &models.User{ID: uuid.NewString(), Name: "Alice", Email: &email, IsActive: true}))

	err := store.CreateUser(ctx, &models.User{ID: uuid.NewString(), Name: "Alias", Email: &email, IsActive: true})
	assert.True(t, library.IsConflict(err))

	// users without an email never collide
	require.NoError(t, store.CreateUser(ctx, &models.User{ID: uuid.NewString(), Name: "Bob", IsActive: true}))
	require.NoError(t, store.CreateUser(ctx, &models.User{ID: uuid.NewString(), Name: "Carol", IsActive: true}))
}

func TestStore_ListOrdering(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, title := range []string{"Zed", "Alpha", "Mid"} {
		b := newBook(1)
		b.Title = title
		require.NoError(t, store.CreateBook(ctx, b))
	}

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Alpha", books[0].Title)
	assert.Equal(t, "Zed", books[2].Title)
}
