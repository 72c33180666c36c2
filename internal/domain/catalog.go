package domain

import (
	"time"
)

// CatalogItem is a single webtoon series.
type CatalogItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	AuthorID     string        `json:"author_id"`
	AuthorName   string        `json:"author_name"`
	Description  string        `json:"description"`
	Genres       []string      `json:"genres"`
	Rating       float64       `json:"rating"`
	Views        int64         `json:"views"`
	Likes        int64         `json:"likes"`
	Status       CatalogStatus `json:"status"`
	Language     string        `json:"language"`
	UpdatedAt    time.Time     `json:"updated_at"`
	IsAdult      bool          `json:"is_adult"`
	Keywords     []string      `json:"keywords,omitempty"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
}

// CatalogStatus is the publication status of a series.
type CatalogStatus string

const (
	CatalogStatusOngoing   CatalogStatus = "ongoing"
	CatalogStatusCompleted CatalogStatus = "completed"
	CatalogStatusHiatus    CatalogStatus = "hiatus"
)

// IsValid reports whether s is a recognised publication status.
func (s CatalogStatus) IsValid() bool {
	switch s {
	case CatalogStatusOngoing, CatalogStatusCompleted, CatalogStatusHiatus:
		return true
	}
	return false
}

// CatalogFilters narrows the set of items a catalog lister returns. Zero values mean no filter.
type CatalogFilters struct {
	Status       CatalogStatus
	Languages    []string
	MinRating    float64
	IncludeAdult bool
}

// CatalogListOptions controls paging of catalog listings.
type CatalogListOptions struct {
	Page, PageSize int
}
