package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/cerego-backend/internal/config"
	"github.com/heartmarshall/cerego-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Flashcard *FlashcardHandler
	Import    *ImportHandler
	Quiz      *QuizHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// RouterDeps holds the cross-cutting pieces the middleware chain needs.
type RouterDeps struct {
	Logger    *slog.Logger
	TokenAuth middleware.Middleware
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit int
}

// NewRouter builds the HTTP routing table. Authentication is resolved for
// every request; per-operation authorization lives in the services.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(deps.Limiter.Limit(deps.RateLimit))
	r.Use(deps.TokenAuth)

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/catalogs", func(r chi.Router) {
			r.Get("/", h.Catalog.List)
			r.Post("/", h.Catalog.Create)
			r.Patch("/{catalogID}/visibility", h.Catalog.SetVisibility)
			r.Delete("/{catalogID}", h.Catalog.Delete)
			r.Post("/{catalogID}/share", h.Catalog.Share)
			r.Delete("/{catalogID}/share/{userID}", h.Catalog.Unshare)
		})

		r.Route("/collection", func(r chi.Router) {
			r.Get("/", h.Catalog.Collection)
			r.Post("/{catalogID}", h.Catalog.AddToCollection)
			r.Delete("/{catalogID}", h.Catalog.RemoveFromCollection)
		})

		r.Route("/flashcards", func(r chi.Router) {
			r.Get("/", h.Flashcard.List)
			r.Get("/stats", h.Flashcard.Stats)
			r.Post("/{flashcardID}/share", h.Flashcard.Share)
			r.Delete("/{flashcardID}", h.Flashcard.Delete)
		})

		r.Route("/words", func(r chi.Router) {
			r.Post("/extract", h.Flashcard.ExtractWords)
			r.Post("/check-duplicates", h.Flashcard.CheckDuplicates)
			r.Post("/validate", h.Import.ValidateWords)
			r.Post("/definitions", h.Import.GenerateDefinitions)
		})

		r.Route("/import", func(r chi.Router) {
			r.Post("/", h.Import.Dispatch)
			r.Get("/{taskID}", h.Import.Poll)
		})

		r.Get("/quiz-types", h.Quiz.ListTypes)
		r.Get("/quizzes", h.Quiz.History)
		r.Post("/quizzes/{quizID}/score", h.Quiz.RecordScore)

		r.Post("/admin/import/resume", h.Admin.ResumeImports)
	})

	return r
}
