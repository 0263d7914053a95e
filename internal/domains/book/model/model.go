package model

// Category is the pricing tier a book belongs to. It drives the rate
// schedule in the lending service; anything outside the known set is
// rejected there, never silently priced.
type Category string

const (
	CategoryRegular Category = "regular"
	CategoryFiction Category = "fiction"
	CategoryNovel   Category = "novel"
)

// Valid reports whether the category is one of the recognized tiers.
func (c Category) Valid() bool {
	switch c {
	case CategoryRegular, CategoryFiction, CategoryNovel:
		return true
	default:
		return false
	}
}

// Book is created by the import process and never mutated by the API.
type Book struct {
	ID         int64    `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	AuthorName string   `json:"author_name" db:"author_name"`
	Category   Category `json:"category" db:"category"`
}
