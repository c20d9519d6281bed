// Package query filters, sorts and paginates the catalog.
//
// Every function here is pure: the input slice is never modified and the
// same input always yields the same output. Page clamping is left to the
// caller so that any positive page number is a valid request.
package query // import "github.com/Xunop/e-livraria/internal/query"

import (
	"sort"
	"strings"

	"github.com/Xunop/e-livraria/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Run filters, sorts and paginates books.
func Run(books []model.Book, c model.Criteria) model.Page {
	filtered := Filter(books, c)
	sorted := Sort(filtered, c.Sort)
	items, total, pageCount := Paginate(sorted, c.Page, c.PageSize)

	return model.Page{
		Items:     items,
		Total:     total,
		Page:      c.Page,
		PageCount: pageCount,
		PageSize:  c.PageSize,
	}
}

// Filter keeps the books matching every predicate of c. Empty search,
// genre and author filters match everything. Price bounds are inclusive.
func Filter(books []model.Book, c model.Criteria) []model.Book {
	term := fold(strings.TrimSpace(c.Search))
	genres := toSet(c.Genres)
	authors := toSet(c.Authors)

	filtered := make([]model.Book, 0, len(books))
	for _, b := range books {
		if term != "" && !matchTerm(&b, term) {
			continue
		}
		if len(genres) > 0 {
			if _, ok := genres[b.Genre]; !ok {
				continue
			}
		}
		if len(authors) > 0 {
			if _, ok := authors[b.Author]; !ok {
				continue
			}
		}
		if !inRange(b.Price, c.MinPrice, c.MaxPrice) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// Sort returns a stably sorted copy of books. Relevance keeps the order.
func Sort(books []model.Book, mode model.SortMode) []model.Book {
	sorted := make([]model.Book, len(books))
	copy(sorted, books)

	var less func(a, b *model.Book) bool
	switch mode {
	case model.SortPriceAsc:
		less = func(a, b *model.Book) bool { return a.Price.LessThan(b.Price) }
	case model.SortPriceDesc:
		less = func(a, b *model.Book) bool { return a.Price.GreaterThan(b.Price) }
	case model.SortRatingDesc:
		less = func(a, b *model.Book) bool { return a.Rating > b.Rating }
	case model.SortRecent:
		// Dates are parsed once, unparsable ones count as 01/01/1970.
		type dated struct {
			book     model.Book
			released int64
		}
		keyed := make([]dated, len(sorted))
		for i, b := range sorted {
			keyed[i] = dated{book: b, released: b.ReleaseTime().Unix()}
		}
		sort.SliceStable(keyed, func(i, j int) bool { return keyed[i].released > keyed[j].released })
		for i := range keyed {
			sorted[i] = keyed[i].book
		}
		return sorted
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(&sorted[i], &sorted[j]) })
	return sorted
}

// Paginate returns the 1-based page of books along with the total count
// and the number of pages, which is never below 1. A page past the end is
// empty, not an error. Pages and sizes below 1 are read as 1.
func Paginate(books []model.Book, page, pageSize int) (items []model.Book, total int, pageCount int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total = len(books)
	pageCount = PageCount(total, pageSize)

	// Past the last page; checked before multiplying so huge pages cannot overflow.
	if page > pageCount {
		return []model.Book{}, total, pageCount
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []model.Book{}, total, pageCount
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	items = make([]model.Book, end-start)
	copy(items, books[start:end])
	return items, total, pageCount
}

func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds a requested page to [1, pageCount].
func ClampPage(page, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

func matchTerm(b *model.Book, term string) bool {
	return strings.Contains(fold(b.Title), term) ||
		strings.Contains(fold(b.Author), term) ||
		strings.Contains(fold(b.Genre), term)
}

func inRange(price, min, max decimal.Decimal) bool {
	return price.GreaterThanOrEqual(min) && price.LessThanOrEqual(max)
}

// A Caser keeps state between calls, so one is built per string.
func fold(s string) string {
	return cases.Fold().String(s)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
