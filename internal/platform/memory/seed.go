package memory

import "github.com/quietpage/stacks-api/internal/domain"

// SeedBooks returns the startup catalog: ten classics of world literature
// keyed by ISBN. Negative years are BCE. Reviews start empty and are the
// only part of a book mutated at runtime.
func SeedBooks() map[string]*domain.Book {
	books := []*domain.Book{
		{
			ISBN:   "1",
			Author: "Chinua Achebe",
			Title:  "Things Fall Apart",
			Genre:  []string{"fiction", "historical"},
			Year:   1958,
			Rating: 4.5,
		},
		{
			ISBN:   "2",
			Author: "Hans Christian Andersen",
			Title:  "Fairy tales",
			Genre:  []string{"fairy tale", "short stories"},
			Year:   1836,
			Rating: 4.2,
		},
		{
			ISBN:   "3",
			Author: "Dante Alighieri",
			Title:  "The Divine Comedy",
			Genre:  []string{"poetry", "epic"},
			Year:   1320,
			Rating: 4.7,
		},
		{
			ISBN:   "4",
			Author: "Unknown",
			Title:  "The Epic Of Gilgamesh",
			Genre:  []string{"epic", "mythology"},
			Year:   -1700,
			Rating: 4.3,
		},
		{
			ISBN:   "5",
			Author: "Unknown",
			Title:  "The Book Of Job",
			Genre:  []string{"poetry", "religious"},
			Year:   -600,
			Rating: 4.0,
		},
		{
			ISBN:   "6",
			Author: "Unknown",
			Title:  "One Thousand and One Nights",
			Genre:  []string{"folklore", "short stories"},
			Year:   1200,
			Rating: 4.4,
		},
		{
			ISBN:   "7",
			Author: "Unknown",
			Title:  "Njal's Saga",
			Genre:  []string{"saga", "historical"},
			Year:   1350,
			Rating: 4.1,
		},
		{
			ISBN:   "8",
			Author: "Jane Austen",
			Title:  "Pride and Prejudice",
			Genre:  []string{"fiction", "romance"},
			Year:   1813,
			Rating: 4.6,
		},
		{
			ISBN:   "9",
			Author: "Honore de Balzac",
			Title:  "Le Pere Goriot",
			Genre:  []string{"fiction", "realism"},
			Year:   1835,
			Rating: 4.0,
		},
		{
			ISBN:   "10",
			Author: "Samuel Beckett",
			Title:  "Molloy, Malone Dies, The Unnamable, the trilogy",
			Genre:  []string{"fiction", "modernist"},
			Year:   1952,
			Rating: 3.9,
		},
	}

	out := make(map[string]*domain.Book, len(books))
	for _, b := range books {
		b.Reviews = make(map[string]string)
		out[b.ISBN] = b
	}
	return out
}
