// Package checkout builds the order summary of a cart and confirms it.
package checkout // import "github.com/Xunop/e-livraria/internal/checkout"

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xunop/e-livraria/internal/cart"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/util"
	"github.com/shopspring/decimal"
)

const (
	StatusConfirmed = "confirmed"
	StatusEmpty     = "empty"

	updatedAtLayout = "02/01/2006 15:04"
)

// Catalog resolves books by id.
type Catalog interface {
	ByID(id string) (*model.Book, bool)
}

type Line struct {
	BookID             string          `json:"book_id"`
	Title              string          `json:"title"`
	Author             string          `json:"author"`
	Genre              string          `json:"genre"`
	Caption            string          `json:"caption"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitPriceFormatted string          `json:"unit_price_formatted"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	SubtotalFormatted  string          `json:"subtotal_formatted"`
}

type View struct {
	Empty          bool            `json:"empty"`
	Items          int             `json:"items"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	UpdatedAt      string          `json:"updated_at"`
	// Titles lists "<title> (x<qty>)" per line.
	Titles []string `json:"titles"`
	Lines  []Line   `json:"lines"`
}

type Result struct {
	Status         string          `json:"status"`
	Message        string          `json:"message"`
	OrderID        string          `json:"order_id,omitempty"`
	Items          int             `json:"items"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

// Build renders the cart against the catalog. Missing books never fail,
// their lines fall back to a placeholder title.
func Build(c *cart.Cart, catalog Catalog, now time.Time) View {
	items, total := c.Aggregate()
	view := View{
		Empty:          c.IsEmpty(),
		Items:          items,
		Total:          total,
		TotalFormatted: util.FormatBRL(total),
		UpdatedAt:      now.Format(updatedAtLayout),
		Titles:         make([]string, 0, c.Len()),
		Lines:          make([]Line, 0, c.Len()),
	}

	for _, l := range c.Lines() {
		line := resolve(l, catalog)
		view.Lines = append(view.Lines, line)
		view.Titles = append(view.Titles, fmt.Sprintf("%s (x%d)", line.Title, line.Quantity))
	}
	return view
}

// Confirm places the order and empties the cart. An empty cart is left
// untouched and reported as such.
func Confirm(c *cart.Cart) Result {
	if c.IsEmpty() {
		return Result{
			Status:         StatusEmpty,
			Message:        "Seu carrinho está vazio.",
			Total:          decimal.Zero,
			TotalFormatted: util.FormatBRL(decimal.Zero),
		}
	}

	items, total := c.Aggregate()
	c.Clear()
	return Result{
		Status:         StatusConfirmed,
		Message:        "Pedido confirmado! Obrigado pela compra.",
		OrderID:        util.GenUUID(),
		Items:          items,
		Total:          total,
		TotalFormatted: util.FormatBRL(total),
	}
}

// resolve fills the display fields of a line from the line itself first,
// then from the catalog.
func resolve(l model.CartLine, catalog Catalog) Line {
	var book *model.Book
	if catalog != nil {
		book, _ = catalog.ByID(l.BookID)
	}

	line := Line{
		BookID:             l.BookID,
		Title:              pick(l.Title, book, func(b *model.Book) string { return b.Title }),
		Author:             pick(l.Author, book, func(b *model.Book) string { return b.Author }),
		Genre:              pick(l.Genre, book, func(b *model.Book) string { return b.Genre }),
		Quantity:           l.Quantity,
		UnitPrice:          l.UnitPrice,
		UnitPriceFormatted: util.FormatBRL(l.UnitPrice),
		Subtotal:           l.Subtotal(),
		SubtotalFormatted:  util.FormatBRL(l.Subtotal()),
	}
	if line.Title == "" {
		line.Title = fmt.Sprintf("Livro (%s)", l.BookID)
	}
	line.Caption = caption(line.Author, line.Genre)
	return line
}

func pick(own string, book *model.Book, field func(*model.Book) string) string {
	if own != "" {
		return own
	}
	if book != nil {
		return field(book)
	}
	return ""
}

func caption(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "—"
	}
	return strings.Join(kept, " • ")
}
