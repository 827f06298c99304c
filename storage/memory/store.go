// Package memory is a map-backed implementation of the library store
// interfaces. One mutex serializes every mutation, which trivially gives
// the per-row atomicity the core relies on; it backs the test suite and
// small single-process deployments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/models"
)

type Store struct {
	mu     sync.Mutex
	books  map[string]*models.Book
	users  map[string]*models.User
	issues map[string]*models.Issue
}

var _ library.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		books:  make(map[string]*models.Book),
		users:  make(map[string]*models.User),
		issues: make(map[string]*models.Issue),
	}
}

// Books

func (s *Store) CreateBook(_ context.Context, b *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ISBN != nil {
		for _, other := range s.books {
			if other.ISBN != nil && *other.ISBN == *b.ISBN {
				return &library.ConflictError{Reason: "isbn already exists"}
			}
		}
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	s.books[b.ID] = cloneBook(b)
	return nil
}

func (s *Store) GetBook(_ context.Context, id string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, &library.NotFoundError{Entity: "book", ID: id}
	}
	return cloneBook(b), nil
}

func (s *Store) ListBooks(_ context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, *cloneBook(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *Store) ResizeBook(_ context.Context, id string, newTotal int) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, &library.NotFoundError{Entity: "book", ID: id}
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
	b.UpdatedAt = time.Now().UTC()
	return cloneBook(b), nil
}

func (s *Store) ReserveCopy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return &library.NotFoundError{Entity: "book", ID: id}
	}
	if b.AvailableCopies <= 0 {
		return &library.UnavailableError{BookID: id}
	}
	b.AvailableCopies--
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) ReleaseCopy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return &library.NotFoundError{Entity: "book", ID: id}
	}
	if b.AvailableCopies >= b.TotalCopies {
		return &library.ConflictError{Reason: "release without a matching reservation"}
	}
	b.AvailableCopies++
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) DeleteBook(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return &library.NotFoundError{Entity: "book", ID: id}
	}
	for _, i := range s.issues {
		if i.BookID == id && i.ReturnDate == nil {
			return &library.InUseError{Entity: "book", ID: id}
		}
	}
	delete(s.books, id)
	return nil
}

func (s *Store) CountBooks(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.books)), nil
}

// Users

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkEmailFree(u.Email, u.ID); err != nil {
		return err
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, &library.NotFoundError{Entity: "user", ID: id}
	}
	return cloneUser(u), nil
}

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.users[u.ID]
	if !ok {
		return &library.NotFoundError{Entity: "user", ID: u.ID}
	}
	if err := s.checkEmailFree(u.Email, u.ID); err != nil {
		return err
	}
	cur.Name = u.Name
	cur.Email = cloneStr(u.Email)
	cur.IsActive = u.IsActive
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) SetUserActive(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return &library.NotFoundError{Entity: "user", ID: id}
	}
	u.IsActive = active
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return &library.NotFoundError{Entity: "user", ID: id}
	}
	for _, i := range s.issues {
		if i.UserID == id && i.ReturnDate == nil {
			return &library.InUseError{Entity: "user", ID: id}
		}
	}
	delete(s.users, id)
	return nil
}

func (s *Store) CountUsers(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

// Issues

func (s *Store) CreateIssue(_ context.Context, i *models.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	i.CreatedAt, i.UpdatedAt = now, now
	s.issues[i.ID] = cloneIssue(i)
	return nil
}

func (s *Store) GetIssue(_ context.Context, id string) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.issues[id]
	if !ok {
		return nil, &library.NotFoundError{Entity: "issue", ID: id}
	}
	return cloneIssue(i), nil
}

func (s *Store) ListIssues(_ context.Context, f library.IssueFilter) ([]models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Issue, 0, len(s.issues))
	for _, i := range s.issues {
		if f.UserID != "" && i.UserID != f.UserID {
			continue
		}
		if f.BookID != "" && i.BookID != f.BookID {
			continue
		}
		if f.Status == library.StatusOpen && i.ReturnDate != nil {
			continue
		}
		if f.Status == library.StatusReturned && i.ReturnDate == nil {
			continue
		}
		out = append(out, *cloneIssue(i))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssueDate.After(out[j].IssueDate) })
	return out, nil
}

func (s *Store) CloseIssue(_ context.Context, id string, returnDate time.Time, fine decimal.Decimal) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.issues[id]
	if !ok {
		return nil, &library.NotFoundError{Entity: "issue", ID: id}
	}
	if i.ReturnDate != nil {
		return nil, &library.AlreadyReturnedError{IssueID: id}
	}
	rd := returnDate.UTC()
	i.ReturnDate = &rd
	i.FinePaid = fine
	i.UpdatedAt = time.Now().UTC()
	return cloneIssue(i), nil
}

func (s *Store) CountOpenIssues(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, i := range s.issues {
		if i.ReturnDate == nil {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountOpenIssuesDueBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, i := range s.issues {
		if i.ReturnDate == nil && i.DueDate.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

func (s *Store) SumFines(_ context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, i := range s.issues {
		total = total.Add(i.FinePaid)
	}
	return total, nil
}

// helpers

func (s *Store) checkEmailFree(email *string, selfID string) error {
	if email == nil {
		return nil
	}
	for id, other := range s.users {
		if id != selfID && other.Email != nil && *other.Email == *email {
			return &library.ConflictError{Reason: "email already exists"}
		}
	}
	return nil
}

func cloneBook(b *models.Book) *models.Book {
	out := *b
	out.ISBN = cloneStr(b.ISBN)
	return &out
}

func cloneUser(u *models.User) *models.User {
	out := *u
	out.Email = cloneStr(u.Email)
	return &out
}

func cloneIssue(i *models.Issue) *models.Issue {
	out := *i
	if i.ReturnDate != nil {
		rd := *i.ReturnDate
		out.ReturnDate = &rd
	}
	return &out
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
