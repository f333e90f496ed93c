package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elecmate/apprentice-backend/internal/config"
	"github.com/elecmate/apprentice-backend/internal/transport/dataloader"
	"github.com/elecmate/apprentice-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter mounts.
type RouterDeps struct {
	Health        *HealthHandler
	Diary         *DiaryHandler
	Safety        *SafetyHandler
	Qualification *QualificationHandler

	Auth      middleware.Middleware
	RateLimit middleware.Middleware
	Loaders   *dataloader.Repos

	CORS   config.CORSConfig
	Logger *slog.Logger
}

// NewRouter builds the HTTP handler. Health probes sit outside auth and rate
// limiting; everything under /api runs the full chain.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api", func(api chi.Router) {
		if d.Auth != nil {
			api.Use(d.Auth)
		}
		if d.RateLimit != nil {
			api.Use(d.RateLimit)
		}

		api.Route("/diary", func(dr chi.Router) {
			if d.Loaders != nil {
				dr.With(dataloader.Middleware(d.Loaders)).Get("/", d.Diary.List)
			} else {
				dr.Get("/", d.Diary.List)
			}
			dr.Post("/", d.Diary.Create)
			dr.Get("/{id}", d.Diary.Get)
			dr.Delete("/{id}", d.Diary.Delete)
			dr.Get("/{id}/analysis", d.Diary.GetAnalysis)
			dr.Post("/{id}/analysis", d.Diary.Analyze)
			dr.Post("/{id}/portfolio/start", d.Diary.StartPortfolio)
			dr.Post("/{id}/portfolio", d.Diary.CreatePortfolio)
		})

		api.Get("/qualification", d.Qualification.Get)

		api.Route("/safety/alerts", func(sr chi.Router) {
			sr.Get("/", d.Safety.List)
			sr.Get("/bookmarked", d.Safety.Bookmarked)
			sr.Get("/{id}", d.Safety.Get)
			sr.Post("/{id}/bookmark", d.Safety.ToggleBookmark)
			sr.Put("/{id}/rating", d.Safety.Rate)
		})
	})

	return r
}
