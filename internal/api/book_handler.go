package api

import (
	"log/slog"
	"net/http"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/store"
)

// BookHandler serves the public catalog endpoints.
type BookHandler struct {
	catalog store.CatalogStore
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(catalog store.CatalogStore) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// ListBooks handles GET /.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list books", "error", err)
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Books retrieved", books)
}

// GetBookByISBN handles GET /isbn/{isbn}.
func (h *BookHandler) GetBookByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(w, r, "isbn")
	if !ok {
		return
	}

	book, err := h.catalog.GetByISBN(r.Context(), isbn)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Book retrieved", book)
}

// SearchByAuthor handles GET /author/{author}. The store returns an empty
// map for no matches; the 404 policy for emptiness lives here, not in the
// store.
func (h *BookHandler) SearchByAuthor(w http.ResponseWriter, r *http.Request) {
	author, ok := pathParam(w, r, "author")
	if !ok {
		return
	}

	books, err := h.catalog.SearchByAuthor(r.Context(), author)
	if err != nil {
		slog.Error("author search failed", "error", err, "author", author)
		HandleAPIError(w, r, err, "Search failed")
		return
	}

	if len(books) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No books found for this author")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Books retrieved", books)
}

// SearchByTitle handles GET /title/{title}. Same emptiness policy as
// SearchByAuthor.
func (h *BookHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	title, ok := pathParam(w, r, "title")
	if !ok {
		return
	}

	books, err := h.catalog.SearchByTitle(r.Context(), title)
	if err != nil {
		slog.Error("title search failed", "error", err, "title", title)
		HandleAPIError(w, r, err, "Search failed")
		return
	}

	if len(books) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No books found for this title")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Books retrieved", books)
}

// ListReviews handles GET /review/{isbn}. An empty reviews map is a success;
// only an unknown ISBN is a 404.
func (h *BookHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(w, r, "isbn")
	if !ok {
		return
	}

	reviews, err := h.catalog.ListReviews(r.Context(), isbn)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Reviews retrieved", reviews)
}
