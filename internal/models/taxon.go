package models

// Taxon is a category or a genre: a display name plus a unique slug.
type Taxon struct {
	ID   int64  `json:"-" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// TaxonInput is the payload for creating a category or a genre.
type TaxonInput struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}
