package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"TheoVia/internal/config"
	"TheoVia/internal/handlers/faq"
	"TheoVia/internal/handlers/health"
	"TheoVia/internal/handlers/landing"
	"TheoVia/internal/handlers/promo"
	"TheoVia/internal/handlers/visibility"
	"TheoVia/internal/middleware"
	"TheoVia/internal/visitor"
	"TheoVia/web/components"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	config   config.Config
	visitors *visitor.Store
}

func New(cfg config.Config) *Server {
	visitors := visitor.NewStore(cfg.VisitorTTL, components.SectionNames(), components.FAQCount())

	return &Server{
		config:   cfg,
		visitors: visitors,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Serve static files
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./web/static"))))

	// Health check endpoint
	r.Get("/health", health.Handler)

	// The funnel page and its per-visitor interactions
	r.Get("/", middleware.WithVisitor(s.visitors, landing.Handler))
	r.Post("/faq/{idx}/toggle", middleware.WithVisitor(s.visitors, faq.ToggleHandler))
	r.Post("/api/visibility/{section}", middleware.WithVisitor(s.visitors, visibility.BeaconHandler))

	// API routes
	r.Get("/api/promo/countdown", promo.CountdownHandler())

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
