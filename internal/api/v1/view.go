package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/validator"
	"github.com/pkg/errors"
)

type viewResponse struct {
	View     model.ViewMode `json:"view"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func newViewResponse(st *session.State) viewResponse {
	return viewResponse{
		View:     st.View,
		Page:     st.Page,
		PageSize: config.PageSize(string(st.View)),
	}
}

func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	var result viewResponse
	currentSession(r).Do(func(st *session.State) {
		result = newViewResponse(st)
	})
	response.OK(w, r, result)
}

// setView switches the view mode, toggling it when the body names none.
// Any change sends the session back to the first page.
func (h *Handler) setView(w http.ResponseWriter, r *http.Request) {
	req := &model.ViewModeRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, r, errors.Wrap(err, "invalid view request"))
		return
	}
	if err := validator.ValidateViewModeRequest(req); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	var result viewResponse
	currentSession(r).Do(func(st *session.State) {
		next := st.View.Toggle()
		if req.View != "" {
			next = model.ParseViewMode(req.View)
		}
		if next != st.View {
			st.View = next
			st.Page = 1
		}
		result = newViewResponse(st)
	})
	response.OK(w, r, result)
}
