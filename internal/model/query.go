package model //import "github.com/Xunop/e-livraria/internal/model"

import (
	"strings"

	"github.com/shopspring/decimal"
)

type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortRatingDesc SortMode = "rating_desc"
	SortRecent     SortMode = "recent"
)

var sortModes = []SortMode{SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortRecent}

// ParseSortMode maps a client value to a SortMode, unknown values mean relevance.
func ParseSortMode(s string) SortMode {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range sortModes {
		if string(m) == s {
			return m
		}
	}
	return SortRelevance
}

type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

func ParseViewMode(s string) ViewMode {
	if strings.ToLower(strings.TrimSpace(s)) == string(ViewGrid) {
		return ViewGrid
	}
	return ViewList
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

// Criteria is one catalog query, rebuilt on every request.
type Criteria struct {
	Search   string
	Genres   []string
	Authors  []string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     SortMode
	// Page is 1-based.
	Page     int
	PageSize int
}

// Page is one slice of a filtered and sorted catalog.
type Page struct {
	Items     []Book `json:"items"`
	Total     int    `json:"total"`
	Page      int    `json:"page"`
	PageCount int    `json:"page_count"`
	PageSize  int    `json:"page_size"`
}
