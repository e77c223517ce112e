package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/store"
)

// CatalogStore implements store.CatalogStore with an ISBN-keyed map.
type CatalogStore struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
}

// Ensure CatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*CatalogStore)(nil)

// NewCatalogStore creates a catalog holding the given books. The store takes
// ownership of the map; callers should not retain references to it. Pass
// SeedBooks() for the standard startup catalog.
func NewCatalogStore(books map[string]*domain.Book) *CatalogStore {
	if books == nil {
		books = make(map[string]*domain.Book)
	}
	return &CatalogStore{books: books}
}

// ListAll implements store.CatalogStore.ListAll.
func (s *CatalogStore) ListAll(ctx context.Context) (map[string]*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*domain.Book, len(s.books))
	for isbn, book := range s.books {
		out[isbn] = book.Clone()
	}
	return out, nil
}

// GetByISBN implements store.CatalogStore.GetByISBN.
func (s *CatalogStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return book.Clone(), nil
}

// SearchByAuthor implements store.CatalogStore.SearchByAuthor.
func (s *CatalogStore) SearchByAuthor(
	ctx context.Context,
	substr string,
) (map[string]*domain.Book, error) {
	return s.search(substr, func(b *domain.Book) string { return b.Author })
}

// SearchByTitle implements store.CatalogStore.SearchByTitle.
func (s *CatalogStore) SearchByTitle(
	ctx context.Context,
	substr string,
) (map[string]*domain.Book, error) {
	return s.search(substr, func(b *domain.Book) string { return b.Title })
}

// search returns every book whose selected field contains substr,
// case-insensitively. An empty result is a valid success value.
func (s *CatalogStore) search(
	substr string,
	field func(*domain.Book) string,
) (map[string]*domain.Book, error) {
	needle := strings.ToLower(substr)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*domain.Book)
	for isbn, book := range s.books {
		if strings.Contains(strings.ToLower(field(book)), needle) {
			out[isbn] = book.Clone()
		}
	}
	return out, nil
}

// ListReviews implements store.CatalogStore.ListReviews.
func (s *CatalogStore) ListReviews(ctx context.Context, isbn string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, store.ErrBookNotFound
	}

	out := make(map[string]string, len(book.Reviews))
	for user, text := range book.Reviews {
		out[user] = text
	}
	return out, nil
}

// UpsertReview implements store.CatalogStore.UpsertReview. Prior existence is
// checked under the same lock as the write so the answer is exact even under
// concurrent writes by the same user.
func (s *CatalogStore) UpsertReview(
	ctx context.Context,
	isbn, username, text string,
) (*domain.Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, false, store.ErrBookNotFound
	}

	_, existed := book.Reviews[username]
	book.Reviews[username] = text
	return book.Clone(), existed, nil
}

// DeleteReview implements store.CatalogStore.DeleteReview.
func (s *CatalogStore) DeleteReview(
	ctx context.Context,
	isbn, username string,
) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, store.ErrBookNotFound
	}

	if _, ok := book.Reviews[username]; !ok {
		return nil, store.ErrReviewNotFound
	}

	delete(book.Reviews, username)
	return book.Clone(), nil
}
