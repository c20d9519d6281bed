package model //import "github.com/Xunop/e-livraria/internal/model"

import "github.com/shopspring/decimal"

// CartLine holds the accumulated quantity of one book in a cart.
// BookID is a weak reference, the book may be missing from the catalog.
type CartLine struct {
	BookID    string          `json:"book_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	// Optional display fields copied from the book when the line was added.
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	Genre  string `json:"genre,omitempty"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
