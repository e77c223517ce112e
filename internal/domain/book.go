package domain

// Book represents a single catalog entry, keyed by ISBN everywhere in the
// system. The reviews map is the only part of a book that changes after
// seeding; it maps the reviewing username to that user's review text, so a
// user holds at most one review per book.
type Book struct {
	ISBN    string            `json:"isbn"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Genre   []string          `json:"genre"`
	Year    int               `json:"year"` // negative for BCE
	Rating  float64           `json:"rating"`
	Reviews map[string]string `json:"reviews"`
}

// Clone returns a deep copy of the book so callers cannot mutate store
// state through the reviews map of a returned value.
func (b *Book) Clone() *Book {
	reviews := make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		reviews[user] = text
	}
	genre := make([]string, len(b.Genre))
	copy(genre, b.Genre)

	return &Book{
		ISBN:    b.ISBN,
		Author:  b.Author,
		Title:   b.Title,
		Genre:   genre,
		Year:    b.Year,
		Rating:  b.Rating,
		Reviews: reviews,
	}
}

// MaxReviewLength bounds the accepted review body.
const MaxReviewLength = 1000

// ValidateReviewText checks that a review body is non-empty and within the
// accepted length.
func ValidateReviewText(text string) error {
	if text == "" {
		return ErrEmptyReview
	}
	if len(text) > MaxReviewLength {
		return ErrReviewTooLong
	}
	return nil
}
