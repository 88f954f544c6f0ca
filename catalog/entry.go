package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Template describes a book from which Add creates copies.
// Its Available flag is ignored, copies always start on the shelf.
type Template struct {
	Title     string `validate:"title"`
	Author    string
	Genre     string
	Price     float64 `validate:"gte=0"`
	Available bool
}

// BuildTemplate creates a Template for an available book.
func BuildTemplate(title, author, genre string, price float64) Template {
	return Template{
		Title:     title,
		Author:    author,
		Genre:     genre,
		Price:     price,
		Available: true,
	}
}

// Entry is one physical copy of a book held by the Catalog.
//
// Entries are handed out by value, mutating a returned Entry never changes the Catalog.
type Entry struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Genre     string
	Price     float64
	Available bool
}

// newEntryFrom creates an independent, available copy of the template.
func newEntryFrom(id uuid.UUID, t Template) Entry {
	return Entry{
		ID:        id,
		Title:     t.Title,
		Author:    t.Author,
		Genre:     t.Genre,
		Price:     t.Price,
		Available: true,
	}
}

// HasTitle reports whether the entry's title matches title, ignoring case.
func (e Entry) HasTitle(title string) bool {
	return strings.EqualFold(e.Title, title)
}
