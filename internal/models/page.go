package models

// PageRequest selects one page of a listing. Page numbers start at 1.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows preceding the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}
