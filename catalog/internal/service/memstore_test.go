package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
)

var _ repository.Repository = (*memStore)(nil)

// memStore is an in-memory repository with failure injection.
type memStore struct {
	mu       sync.Mutex
	books    map[string]model.Book
	loans    map[string]model.LoanRecord
	wishlist map[string]model.WishlistItem
	activity map[string]model.ActivityLogEntry
	users    map[string]model.User

	commits int
	// failCommit makes the n-th CommitBookBatch call fail (1-based).
	failCommit   int
	failSetLoan  error
	failActivity error
	batchSizes   []int
}

func newMemStore() *memStore {
	return &memStore{
		books:    make(map[string]model.Book),
		loans:    make(map[string]model.LoanRecord),
		wishlist: make(map[string]model.WishlistItem),
		activity: make(map[string]model.ActivityLogEntry),
		users:    make(map[string]model.User),
	}
}

func (m *memStore) put(b model.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.Normalize()
	m.books[b.ID] = b
}

func (m *memStore) bookCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books)
}

func (m *memStore) book(id string) model.Book {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.books[id]
}

func (m *memStore) activityEntries() []model.ActivityLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ActivityLogEntry, 0, len(m.activity))
	for _, e := range m.activity {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) sortedBooks() []model.Book {
	out := make([]model.Book, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *memStore) ListBooks(context.Context, model.BookQuery) (model.BookPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return model.BookPage{Items: m.sortedBooks()}, nil
}

func (m *memStore) AllBooks(context.Context) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedBooks(), nil
}

func (m *memStore) GetBook(_ context.Context, id string) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (m *memStore) CreateBook(_ context.Context, book model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[book.ID]; ok {
		return errs.ErrAlreadyExists
	}
	m.books[book.ID] = book
	return nil
}

func (m *memStore) UpdateBook(_ context.Context, id string, patch model.BookPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return errs.ErrNotFound
	}
	patch.Apply(&b)
	m.books[id] = b
	return nil
}

func (m *memStore) DeleteBook(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.books, id)
	for lid, l := range m.loans {
		if l.BookID == id {
			delete(m.loans, lid)
		}
	}
	return nil
}

func (m *memStore) InternalIDIndex(context.Context) ([]model.InternalIDRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	books := make([]model.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool {
		if !books[i].DateAdded.Equal(books[j].DateAdded) {
			return books[i].DateAdded.Before(books[j].DateAdded)
		}
		return books[i].ID < books[j].ID
	})
	refs := make([]model.InternalIDRef, 0, len(books))
	for _, b := range books {
		refs = append(refs, model.InternalIDRef{ID: b.ID, InternalID: b.InternalID})
	}
	return refs, nil
}

func (m *memStore) CommitBookBatch(_ context.Context, books []model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits++
	if m.failCommit == m.commits {
		return errs.ErrBadQuery
	}
	m.batchSizes = append(m.batchSizes, len(books))
	for _, b := range books {
		b.Normalize()
		m.books[b.ID] = b
	}
	return nil
}

func (m *memStore) SetCurrentLoan(_ context.Context, bookID string, loan *model.CurrentLoan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSetLoan != nil {
		return m.failSetLoan
	}
	b, ok := m.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	b.CurrentLoan = loan
	m.books[bookID] = b
	return nil
}

func (m *memStore) AddLoan(_ context.Context, rec model.LoanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[rec.BookID]; !ok {
		return errs.ErrNotFound
	}
	m.loans[rec.ID] = rec
	return nil
}

func (m *memStore) CloseLoan(_ context.Context, bookID, loanID string, returnDate time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.loans[loanID]
	if !ok || rec.BookID != bookID || rec.ReturnDate != nil {
		return errs.ErrNotFound
	}
	rec.ReturnDate = &returnDate
	m.loans[loanID] = rec
	return nil
}

func (m *memStore) LoanHistory(_ context.Context, bookID string) ([]model.LoanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.LoanRecord, 0)
	for _, l := range m.loans {
		if l.BookID == bookID {
			out = append(out, l)
		}
	}
	sortLoans(out)
	return out, nil
}

func (m *memStore) OpenLoans(context.Context) ([]model.LoanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.LoanRecord, 0)
	for _, l := range m.loans {
		if l.Open() {
			out = append(out, l)
		}
	}
	sortLoans(out)
	return out, nil
}

func sortLoans(loans []model.LoanRecord) {
	sort.Slice(loans, func(i, j int) bool {
		if loans[i].BookID != loans[j].BookID {
			return loans[i].BookID < loans[j].BookID
		}
		if !loans[i].LoanDate.Equal(loans[j].LoanDate) {
			return loans[i].LoanDate.After(loans[j].LoanDate)
		}
		return loans[i].ID < loans[j].ID
	})
}

func (m *memStore) ListWishlist(context.Context) ([]model.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.WishlistItem, 0, len(m.wishlist))
	for _, it := range m.wishlist {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out, nil
}

func (m *memStore) AddWishlist(_ context.Context, item model.WishlistItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wishlist[item.ID] = item
	return nil
}

func (m *memStore) UpdateWishlist(_ context.Context, id string, patch model.WishlistPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.wishlist[id]
	if !ok {
		return errs.ErrNotFound
	}
	if patch.BookName != nil {
		it.BookName = *patch.BookName
	}
	if patch.Author != nil {
		it.Author = *patch.Author
	}
	m.wishlist[id] = it
	return nil
}

func (m *memStore) DeleteWishlist(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wishlist[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.wishlist, id)
	return nil
}

func (m *memStore) ListActivity(context.Context) ([]model.ActivityLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ActivityLogEntry, 0, len(m.activity))
	for _, e := range m.activity {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActionDate.After(out[j].ActionDate) })
	return out, nil
}

func (m *memStore) AddActivity(_ context.Context, e model.ActivityLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failActivity != nil {
		return m.failActivity
	}
	m.activity[e.ID] = e
	return nil
}

func (m *memStore) UpdateActivity(_ context.Context, id string, patch model.ActivityPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.activity[id]
	if !ok {
		return errs.ErrNotFound
	}
	if patch.BookTitle != nil {
		e.BookTitle = *patch.BookTitle
	}
	if patch.LoanerName != nil {
		e.LoanerName = *patch.LoanerName
	}
	m.activity[id] = e
	return nil
}

func (m *memStore) DeleteActivity(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.activity[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.activity, id)
	return nil
}

func (m *memStore) CreateUser(_ context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return errs.ErrAlreadyExists
	}
	m.users[u.Email] = u
	return nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (m *memStore) SetAdmin(_ context.Context, email string, admin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return errs.ErrNotFound
	}
	u.Admin = admin
	m.users[u.Email] = u
	return nil
}
