package store

import (
	"context"

	"github.com/quietpage/stacks-api/internal/domain"
)

// CatalogStore defines the interface for book catalog access. Books are
// seeded once at startup; only the per-book reviews map changes at runtime.
type CatalogStore interface {
	// ListAll returns every book in the catalog keyed by ISBN.
	ListAll(ctx context.Context) (map[string]*domain.Book, error)

	// GetByISBN retrieves a single book by exact ISBN.
	// Returns ErrBookNotFound if the ISBN is absent.
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// SearchByAuthor returns every book whose author contains the given
	// substring, case-insensitively. An empty result is not an error; the
	// caller decides whether emptiness is a failure.
	SearchByAuthor(ctx context.Context, substr string) (map[string]*domain.Book, error)

	// SearchByTitle is SearchByAuthor against the title field.
	SearchByTitle(ctx context.Context, substr string) (map[string]*domain.Book, error)

	// ListReviews returns the (possibly empty) reviews map for a book.
	// Returns ErrBookNotFound if the ISBN is absent.
	ListReviews(ctx context.Context, isbn string) (map[string]string, error)

	// UpsertReview sets the review text for (isbn, username), overwriting any
	// existing review by that user. It returns the updated book and whether a
	// review by that user already existed, decided atomically with the write.
	// Returns ErrBookNotFound if the ISBN is absent.
	UpsertReview(ctx context.Context, isbn, username, text string) (*domain.Book, bool, error)

	// DeleteReview removes the review by username from the book and returns
	// the updated book. Returns ErrBookNotFound if the ISBN is absent and
	// ErrReviewNotFound if the book holds no review by that user.
	DeleteReview(ctx context.Context, isbn, username string) (*domain.Book, error)
}
