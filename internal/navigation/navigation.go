package navigation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
)

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Bar struct {
	Home  Link   `json:"home"`
	Links []Link `json:"links"`
}

// DefaultBar has no authentication behind the sign in and sign up entries;
// they point nowhere until accounts exist.
func DefaultBar() Bar {
	return Bar{
		Home: Link{Label: "Home", Href: "/"},
		Links: []Link{
			{Label: "Sign In", Href: "#"},
			{Label: "Sign Up", Href: "#"},
		},
	}
}

type handler struct {
	bar Bar
}

func NewHandler(bar Bar) handlers.Handler {
	return &handler{bar: bar}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/navigation", h.getNavigationHandler)
}

// @Tags		navigation
// @Success	200	{object}	Bar
// @Router		/navigation [get]
func (h *handler) getNavigationHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.bar)
}
