package models

// TitleDB represents a title row joined with its category.
type TitleDB struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Year         int     `db:"year"`
	Description  string  `db:"description"`
	CategoryID   *int64  `db:"category_id"`
	CategoryName *string `db:"category_name"`
	CategorySlug *string `db:"category_slug"`
}

// Title is the read representation of a title with expanded relations
// and the rating computed from its reviews.
type Title struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	Genre       []Taxon  `json:"genre"`
	Category    *Taxon   `json:"category"`
}

// TitleInput is the payload for creating a title. Genre and category are slugs.
type TitleInput struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        *int     `json:"year" validate:"required,min=0"`
	Description string   `json:"description"`
	Genre       []string `json:"genre" validate:"dive,max=50"`
	Category    *string  `json:"category" validate:"omitnil,max=50"`
}

// TitlePatch is a partial update of a title. A nil Genre keeps the current
// genres, an empty one is rejected.
type TitlePatch struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=256"`
	Year        *int     `json:"year" validate:"omitnil,min=0"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre" validate:"omitempty,dive,max=50"`
	Category    *string  `json:"category" validate:"omitnil,max=50"`
}

// TitleFilter narrows title listings. Zero values do not filter.
type TitleFilter struct {
	Name     string
	Category string
	Genre    string
	Year     *int
}
