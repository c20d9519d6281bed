package v1

import (
	"net/http"

	"github.com/Xunop/e-livraria/internal/checkout"
	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartResponse struct {
	Lines          []checkout.Line `json:"lines"`
	Items          int             `json:"items"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

// cartView must be called inside Session.Do.
func (h *Handler) cartView(st *session.State) cartResponse {
	view := checkout.Build(st.Cart, h.store, h.now())
	return cartResponse{
		Lines:          view.Lines,
		Items:          view.Items,
		Total:          view.Total,
		TotalFormatted: view.TotalFormatted,
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	var result cartResponse
	currentSession(r).Do(func(st *session.State) {
		result = h.cartView(st)
	})
	response.OK(w, r, result)
}

// addToCart adds one copy of a book at its current catalog price.
func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	book, ok := h.store.ByID(request.RouteStringParam(r, "id"))
	if !ok {
		response.NotFound(w, r)
		return
	}

	var result cartResponse
	currentSession(r).Do(func(st *session.State) {
		st.Cart.AddLine(model.CartLine{
			BookID:    book.ID,
			UnitPrice: book.Price,
			Title:     book.Title,
			Author:    book.Author,
			Genre:     book.Genre,
		})
		result = h.cartView(st)
	})

	log.Debug("Book added to cart",
		zap.String("session_id", request.GetSessionID(r)),
		zap.String("book_id", book.ID),
		zap.Int("items", result.Items))
	response.OK(w, r, result)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	var result cartResponse
	currentSession(r).Do(func(st *session.State) {
		st.Cart.RemoveOne(id)
		result = h.cartView(st)
	})
	response.OK(w, r, result)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	var result cartResponse
	currentSession(r).Do(func(st *session.State) {
		st.Cart.Clear()
		result = h.cartView(st)
	})
	response.OK(w, r, result)
}
