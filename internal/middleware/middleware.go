package middleware

import (
	"net/http"

	"TheoVia/internal/visitor"
)

const visitorCookie = "theovia_visitor"

// WithVisitor resolves the visitor session for a request and hands the
// state to the wrapped handler, issuing the session cookie on first
// contact.
func WithVisitor(
	visitors *visitor.Store,
	handler func(http.ResponseWriter, *http.Request, *visitor.State),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(visitorCookie); err == nil {
			id = c.Value
		}
		if id == "" {
			id = visitor.NewID()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		handler(w, r, visitors.Get(id))
	}
}
