package api

import (
	"net/http"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/metrics"
	"github.com/quietpage/stacks-api/internal/platform/logger"
	"github.com/quietpage/stacks-api/internal/store"
)

// ReviewHandler serves the authenticated review endpoints. The acting
// username always comes from the validated token in the request context,
// never from the request body, so a user can only ever write or delete
// their own review.
type ReviewHandler struct {
	catalog   store.CatalogStore
	collector *metrics.Collector
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(catalog store.CatalogStore, collector *metrics.Collector) *ReviewHandler {
	return &ReviewHandler{
		catalog:   catalog,
		collector: collector,
	}
}

// UpsertReview handles PUT /customer/auth/review/{isbn}. Writing a review
// where one already exists overwrites it; the response distinguishes
// "added" from "updated" using the prior-existence result the store decides
// atomically with the write.
func (h *ReviewHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	isbn, ok := pathParam(w, r, "isbn")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := domain.ValidateReviewText(req.Review); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	book, hadReview, err := h.catalog.UpsertReview(r.Context(), isbn, identity.Username, req.Review)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	action := "added"
	message := "Review added"
	if hadReview {
		action = "updated"
		message = "Review updated"
	}

	h.collector.RecordReviewWritten()

	log := logger.FromContext(r.Context())
	log.Info("review written",
		"isbn", isbn,
		"username", identity.Username,
		"action", action)

	shared.RespondWithJSON(w, r, http.StatusOK, message, ReviewActionResponse{
		ISBN:    isbn,
		Action:  action,
		Reviews: book.Reviews,
	})
}

// DeleteReview handles DELETE /customer/auth/review/{isbn}. A missing book
// and a missing review are both 404, with distinct messages.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	isbn, ok := pathParam(w, r, "isbn")
	if !ok {
		return
	}

	book, err := h.catalog.DeleteReview(r.Context(), isbn, identity.Username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.collector.RecordReviewDeleted()

	log := logger.FromContext(r.Context())
	log.Info("review deleted",
		"isbn", isbn,
		"username", identity.Username)

	shared.RespondWithJSON(w, r, http.StatusOK, "Review deleted", ReviewActionResponse{
		ISBN:    isbn,
		Action:  "deleted",
		Reviews: book.Reviews,
	})
}
