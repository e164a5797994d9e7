package promo

import (
	"fmt"
	"net/http"
	"time"

	"TheoVia/internal/countdown"
)

// CountdownHandler streams the offer countdown as server-sent events.
// Each connection mounts a fresh clock at the offer constant; the ticker
// is released when the client goes away.
func CountdownHandler() http.HandlerFunc {
	return CountdownStream(time.Second)
}

// CountdownStream is CountdownHandler with a configurable tick, so the
// stream can be exercised in tests without waiting wall-clock seconds.
func CountdownStream(interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		clock := countdown.NewPromo()

		// First value goes out immediately so the page never shows a
		// stale number while waiting for the first tick.
		fmt.Fprintf(w, "data: %s\n\n", clock.String())
		flusher.Flush()

		ticker := countdown.NewTicker(clock, interval)
		go ticker.Run(r.Context())

		for value := range ticker.C() {
			fmt.Fprintf(w, "data: %s\n\n", value)
			flusher.Flush()
		}
	}
}
