package faq

import (
	"net/http"
	"strconv"

	"TheoVia/internal/visitor"
	"github.com/go-chi/chi/v5"
)

// ToggleHandler flips one FAQ entry and sends the visitor back to it.
// A bad index is ignored rather than answered with an error page; a
// stale form post should never break the funnel.
func ToggleHandler(w http.ResponseWriter, r *http.Request, state *visitor.State) {
	raw := chi.URLParam(r, "idx")
	if idx, err := strconv.Atoi(raw); err == nil {
		state.FAQ().Toggle(idx)
	}
	http.Redirect(w, r, "/#faq-"+raw, http.StatusSeeOther)
}
