package model //import "github.com/Xunop/e-livraria/internal/model"

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReleaseDateLayout is the DD/MM/YYYY layout of Book.ReleaseDate.
// Single digit days and months are accepted.
const ReleaseDateLayout = "2/1/2006"

const FormatEbook = "Ebook"

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Genre       string          `json:"genre"`
	Format      string          `json:"format"`
	Language    string          `json:"language"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	ReleaseDate string          `json:"release_date"`
	Stock       int             `json:"stock"`
	// Image is a URL or a path relative to the catalog, never read by the server.
	Image string `json:"image"`
}

// Normalize applies the defaulting rules once so readers never have to.
func (b *Book) Normalize() {
	b.ID = strings.TrimSpace(b.ID)
	if b.Price.IsNegative() {
		b.Price = decimal.Zero
	}
	if b.Stock < 0 {
		b.Stock = 0
	}
}

// Available reports whether the book can be delivered right away.
func (b *Book) Available() bool {
	return b.Stock > 0
}

// Delivery returns the delivery estimate label shown next to a book.
func (b *Book) Delivery() string {
	if b.Format == FormatEbook {
		return "Imediata"
	}
	return "3-7 dias úteis"
}

// ReleaseTime parses ReleaseDate. Unparsable dates are treated as 01/01/1970.
func (b *Book) ReleaseTime() time.Time {
	t, err := time.Parse(ReleaseDateLayout, strings.TrimSpace(b.ReleaseDate))
	if err != nil {
		return epoch
	}
	return t
}

// UnmarshalJSON decodes a catalog record leniently: any malformed field
// falls back to its zero value instead of failing the whole catalog.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Book{
		ID:          rawString(raw["id"]),
		Title:       rawString(raw["title"]),
		Author:      rawString(raw["author"]),
		Genre:       rawString(raw["genre"]),
		Format:      rawString(raw["format"]),
		Language:    rawString(raw["language"]),
		Price:       rawDecimal(raw["price"]),
		Rating:      rawFloat(raw["rating"]),
		ReleaseDate: rawString(raw["release_date"]),
		Stock:       int(rawFloat(raw["stock"])),
		Image:       rawString(raw["image"]),
	}
	b.Normalize()
	return nil
}

func rawString(m json.RawMessage) string {
	if len(m) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s
	}
	// Numbers are kept as their literal text, e.g. numeric ids.
	var n json.Number
	if err := json.Unmarshal(m, &n); err == nil {
		return n.String()
	}
	return ""
}

func rawFloat(m json.RawMessage) float64 {
	s := rawString(m)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func rawDecimal(m json.RawMessage) decimal.Decimal {
	s := rawString(m)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
