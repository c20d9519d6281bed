package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/http/request"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/query"
	"github.com/Xunop/e-livraria/internal/session"
	"github.com/Xunop/e-livraria/internal/util"
	"github.com/Xunop/e-livraria/internal/validator"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type bookResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Author         string          `json:"author"`
	Genre          string          `json:"genre"`
	Format         string          `json:"format"`
	Language       string          `json:"language"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Rating         float64         `json:"rating"`
	ReleaseDate    string          `json:"release_date"`
	Stock          int             `json:"stock"`
	Available      bool            `json:"available"`
	Delivery       string          `json:"delivery"`
	Image          string          `json:"image"`
}

type bookPageResponse struct {
	Items     []bookResponse `json:"items"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PageCount int            `json:"page_count"`
	PageSize  int            `json:"page_size"`
	View      model.ViewMode `json:"view"`
}

type facetsResponse struct {
	Genres   []string `json:"genres"`
	Authors  []string `json:"authors"`
	PriceMin float64  `json:"price_min"`
	PriceMax float64  `json:"price_max"`
}

func newBookResponse(b *model.Book) bookResponse {
	return bookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Genre:          b.Genre,
		Format:         b.Format,
		Language:       b.Language,
		Price:          b.Price,
		PriceFormatted: util.FormatBRL(b.Price),
		Rating:         b.Rating,
		ReleaseDate:    b.ReleaseDate,
		Stock:          b.Stock,
		Available:      b.Available(),
		Delivery:       b.Delivery(),
		Image:          b.Image,
	}
}

// listBooks runs the catalog query of the session. A page given by the
// client, or kept from an earlier request, is clamped to the result here
// and the clamped page is what the session remembers.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	req, err := parseListBooksRequest(r)
	if err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if err := validator.ValidateListBooksRequest(req); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	books := h.store.Load()
	var result bookPageResponse
	currentSession(r).Do(func(st *session.State) {
		if req.View != "" {
			if view := model.ParseViewMode(req.View); view != st.View {
				st.View = view
				st.Page = 1
			}
		}
		if req.Page > 0 {
			st.Page = req.Page
		}

		criteria := model.Criteria{
			Search:   req.Search,
			Genres:   req.Genres,
			Authors:  req.Authors,
			MinPrice: decimal.NewFromFloat(req.MinPrice),
			MaxPrice: decimal.NewFromFloat(req.MaxPrice),
			Sort:     model.ParseSortMode(req.Sort),
			Page:     st.Page,
			PageSize: config.PageSize(string(st.View)),
		}
		page := query.Run(books, criteria)
		if clamped := query.ClampPage(criteria.Page, page.PageCount); clamped != criteria.Page {
			criteria.Page = clamped
			page = query.Run(books, criteria)
		}
		st.Page = page.Page

		result = bookPageResponse{
			Items:     make([]bookResponse, 0, len(page.Items)),
			Total:     page.Total,
			Page:      page.Page,
			PageCount: page.PageCount,
			PageSize:  page.PageSize,
			View:      st.View,
		}
		for i := range page.Items {
			result.Items = append(result.Items, newBookResponse(&page.Items[i]))
		}
	})

	log.Debug("Catalog query",
		zap.String("session_id", request.GetSessionID(r)),
		zap.String("q", req.Search),
		zap.Int("total", result.Total),
		zap.Int("page", result.Page))
	response.OK(w, r, result)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	book, ok := h.store.ByID(request.RouteStringParam(r, "id"))
	if !ok {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, newBookResponse(book))
}

func (h *Handler) getFacets(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, facetsResponse{
		Genres:   h.store.Genres(),
		Authors:  h.store.Authors(),
		PriceMin: config.Opts.PriceMin,
		PriceMax: config.Opts.PriceMax,
	})
}

// parseListBooksRequest reads the catalog query string. Absent prices
// default to the configured slider bounds and an absent page is left 0.
func parseListBooksRequest(r *http.Request) (*model.ListBooksRequest, error) {
	req := &model.ListBooksRequest{
		Search:   request.QueryStringParam(r, "q", ""),
		Genres:   request.QueryStringParamList(r, "genre"),
		Authors:  request.QueryStringParamList(r, "author"),
		MinPrice: config.Opts.PriceMin,
		MaxPrice: config.Opts.PriceMax,
		Sort:     request.QueryStringParam(r, "sort", ""),
		View:     request.QueryStringParam(r, "view", ""),
	}

	var err error
	if request.HasQueryParam(r, "min_price") {
		if req.MinPrice, err = parsePrice(r, "min_price"); err != nil {
			return nil, err
		}
		if !request.HasQueryParam(r, "max_price") && req.MaxPrice < req.MinPrice {
			req.MaxPrice = req.MinPrice
		}
	}
	if request.HasQueryParam(r, "max_price") {
		if req.MaxPrice, err = parsePrice(r, "max_price"); err != nil {
			return nil, err
		}
	}
	if request.HasQueryParam(r, "page") {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			return nil, errors.Wrap(err, "page must be an integer")
		}
		// Pages below 1 mean the first page.
		if page < 1 {
			page = 1
		}
		req.Page = page
	}
	return req, nil
}

// parsePrice reads a finite price from the query string.
func parsePrice(r *http.Request, param string) (float64, error) {
	value, err := strconv.ParseFloat(r.URL.Query().Get(param), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be a number", param)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, errors.Errorf("%s must be a finite number", param)
	}
	return value, nil
}
