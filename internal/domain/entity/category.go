// Package entity defines the core business entities of the ledger.
package entity

// CategoryKind classifies a category as a fixed or variable cost.
type CategoryKind string

const (
	CategoryKindFixed    CategoryKind = "fixed"
	CategoryKindVariable CategoryKind = "variable"
)

// Valid reports whether the kind is one of the known category kinds.
func (k CategoryKind) Valid() bool {
	return k == CategoryKindFixed || k == CategoryKindVariable
}

// Category represents a named classification for transactions.
type Category struct {
	ID   int64
	Name string
	Kind CategoryKind
	Icon string // optional, may be empty
}

// NewCategory creates a new Category entity. The ID is assigned by the
// repository when the category is persisted.
func NewCategory(name string, kind CategoryKind, icon string) *Category {
	return &Category{
		Name: name,
		Kind: kind,
		Icon: icon,
	}
}
