package v1

import (
	"net/http"

	"github.com/Xunop/e-livraria/internal/checkout"
	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/session"
	"go.uber.org/zap"
)

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	var view checkout.View
	currentSession(r).Do(func(st *session.State) {
		view = checkout.Build(st.Cart, h.store, h.now())
	})
	response.OK(w, r, view)
}

// confirmCheckout always answers 200, an empty cart is reported in the
// result status rather than as an error.
func (h *Handler) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	var result checkout.Result
	currentSession(r).Do(func(st *session.State) {
		result = checkout.Confirm(st.Cart)
	})

	if result.Status == checkout.StatusConfirmed {
		log.Info("Order confirmed",
			zap.String("session_id", request.GetSessionID(r)),
			zap.String("order_id", result.OrderID),
			zap.Int("items", result.Items),
			zap.String("total", result.Total.StringFixed(2)))
	}
	response.OK(w, r, result)
}
