package model //import "github.com/Xunop/e-livraria/internal/model"

// ListBooksRequest is the catalog query as sent by the client.
type ListBooksRequest struct {
	Search   string   `query:"q" validate:"max=200"`
	Genres   []string `query:"genre" validate:"max=50,dive,max=200"`
	Authors  []string `query:"author" validate:"max=50,dive,max=200"`
	MinPrice float64  `query:"min_price" validate:"gte=0"`
	MaxPrice float64  `query:"max_price" validate:"gte=0,gtefield=MinPrice"`
	Sort     string   `query:"sort" validate:"omitempty,sortmode"`
	View     string   `query:"view" validate:"omitempty,viewmode"`
	// Page is 0 when the client did not ask for one.
	Page int `query:"page"`
}

type ViewModeRequest struct {
	View string `json:"view" validate:"omitempty,viewmode"`
}
