package visibility

import (
	"net/http"

	"TheoVia/internal/visitor"
	"github.com/go-chi/chi/v5"
)

// BeaconHandler records that a section entered the visitor's viewport.
// The flag is one-way, so repeated or late beacons are harmless, and
// unknown section names are dropped silently.
func BeaconHandler(w http.ResponseWriter, r *http.Request, state *visitor.State) {
	state.MarkSeen(chi.URLParam(r, "section"))
	w.WriteHeader(http.StatusNoContent)
}
