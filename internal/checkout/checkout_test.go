package checkout

import (
	"testing"
	"time"

	"github.com/Xunop/e-livraria/internal/cart"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/store"
	"github.com/Xunop/e-livraria/internal/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *store.Store {
	return store.NewStoreFromBooks([]model.Book{
		{ID: "b1", Title: "Vidas Secas", Author: "Graciliano Ramos", Genre: "Romance", Price: decimal.NewFromInt(35)},
		{ID: "b2", Title: "A Firma", Author: "John Grisham", Genre: "", Price: decimal.NewFromInt(50)},
	})
}

func TestBuildResolvesLines(t *testing.T) {
	c := cart.New()
	c.Add("b1", decimal.NewFromInt(35))
	c.Add("b1", decimal.NewFromInt(35))
	c.AddLine(model.CartLine{BookID: "b2", UnitPrice: decimal.NewFromInt(50), Title: "The Firm"})
	c.Add("gone", decimal.RequireFromString("9.99"))

	now := time.Date(2024, time.February, 3, 14, 5, 0, 0, time.UTC)
	view := Build(c, testCatalog(), now)

	assert.False(t, view.Empty)
	assert.Equal(t, 4, view.Items)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("129.99")))
	assert.Equal(t, "R$ 129,99", view.TotalFormatted)
	assert.Equal(t, "03/02/2024 14:05", view.UpdatedAt)

	require.Len(t, view.Lines, 3)

	assert.Equal(t, "Vidas Secas", view.Lines[0].Title)
	assert.Equal(t, "Graciliano Ramos • Romance", view.Lines[0].Caption)
	assert.Equal(t, "R$ 70,00", view.Lines[0].SubtotalFormatted)

	// Fields stored on the line win over the catalog.
	assert.Equal(t, "The Firm", view.Lines[1].Title)
	assert.Equal(t, "John Grisham", view.Lines[1].Author)
	assert.Equal(t, "John Grisham", view.Lines[1].Caption)

	// A book missing from the catalog degrades to a placeholder.
	assert.Equal(t, "Livro (gone)", view.Lines[2].Title)
	assert.Equal(t, "", view.Lines[2].Author)
	assert.Equal(t, "—", view.Lines[2].Caption)
	assert.Equal(t, "R$ 9,99", view.Lines[2].UnitPriceFormatted)

	assert.Equal(t, []string{"Vidas Secas (x2)", "The Firm (x1)", "Livro (gone) (x1)"}, view.Titles)
}

func TestBuildWithoutCatalog(t *testing.T) {
	c := cart.New()
	c.Add("b1", decimal.NewFromInt(10))
	view := Build(c, nil, time.Now())
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Livro (b1)", view.Lines[0].Title)
}

func TestBuildEmptyCart(t *testing.T) {
	view := Build(cart.New(), testCatalog(), time.Now())
	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.Items)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "R$ 0,00", view.TotalFormatted)
}

func TestConfirmEmptyCart(t *testing.T) {
	c := cart.New()
	res := Confirm(c)
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Empty(t, res.OrderID)
	assert.True(t, c.IsEmpty())

	// Confirming again is still valid.
	assert.Equal(t, StatusEmpty, Confirm(c).Status)
}

func TestConfirmClearsCart(t *testing.T) {
	c := cart.New()
	c.Add("b1", decimal.NewFromInt(35))
	c.Add("b2", decimal.NewFromInt(50))

	res := Confirm(c)
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, 2, res.Items)
	assert.Equal(t, "R$ 85,00", res.TotalFormatted)
	assert.True(t, util.IsUUID(res.OrderID))
	assert.True(t, c.IsEmpty())

	assert.Equal(t, StatusEmpty, Confirm(c).Status)
}
