// Package cart keeps the books a session intends to buy.
package cart // import "github.com/Xunop/e-livraria/internal/cart"

import (
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/shopspring/decimal"
)

// Cart is an insertion ordered collection of lines keyed by book id.
// A line never holds a quantity below 1. Cart is not safe for concurrent
// use, the owning session serialises access.
type Cart struct {
	order []string
	lines map[string]*model.CartLine
}

func New() *Cart {
	return &Cart{lines: make(map[string]*model.CartLine)}
}

// Add puts one more copy of a book in the cart. The unit price is always
// replaced by price, the latest catalog price wins over a stored one.
func (c *Cart) Add(bookID string, price decimal.Decimal) {
	c.AddLine(model.CartLine{BookID: bookID, UnitPrice: price})
}

// AddLine is Add with display fields. Non-empty fields of line replace
// the stored ones, its Quantity is ignored.
func (c *Cart) AddLine(line model.CartLine) {
	cur, ok := c.lines[line.BookID]
	if !ok {
		cur = &model.CartLine{BookID: line.BookID}
		c.lines[line.BookID] = cur
		c.order = append(c.order, line.BookID)
	}
	cur.Quantity++
	cur.UnitPrice = line.UnitPrice
	if line.Title != "" {
		cur.Title = line.Title
	}
	if line.Author != "" {
		cur.Author = line.Author
	}
	if line.Genre != "" {
		cur.Genre = line.Genre
	}
}

// RemoveOne takes one copy of a book out, dropping the line when none is
// left. Unknown ids are ignored.
func (c *Cart) RemoveOne(bookID string) {
	cur, ok := c.lines[bookID]
	if !ok {
		return
	}
	cur.Quantity--
	if cur.Quantity <= 0 {
		c.delete(bookID)
	}
}

func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[string]*model.CartLine)
}

// Aggregate returns the number of copies and the value of the cart.
func (c *Cart) Aggregate() (items int, value decimal.Decimal) {
	value = decimal.Zero
	for _, id := range c.order {
		l := c.lines[id]
		items += l.Quantity
		value = value.Add(l.Subtotal())
	}
	return items, value
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

func (c *Cart) Line(bookID string) (model.CartLine, bool) {
	l, ok := c.lines[bookID]
	if !ok {
		return model.CartLine{}, false
	}
	return *l, true
}

// Len is the number of distinct books in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

func (c *Cart) delete(bookID string) {
	delete(c.lines, bookID)
	for i, id := range c.order {
		if id == bookID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
