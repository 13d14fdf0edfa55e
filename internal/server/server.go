package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
	"github.com/claude/planforge/internal/storage"
)

// Store is the storage surface the handlers need. *storage.DB satisfies
// it; tests substitute an in-memory fake.
type Store interface {
	AllExercises(ctx context.Context) ([]catalog.Exercise, error)
	SearchExercises(ctx context.Context, nameQuery, bodyPart string, limit int) ([]catalog.Exercise, error)
	GetExercise(ctx context.Context, id string) (*catalog.Exercise, error)
	CountExercises(ctx context.Context) (int, error)
	InsertPlan(ctx context.Context, profile plan.UserProfile, generated *plan.GeneratedWorkoutPlan) (uuid.UUID, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRecord, error)
	ListPlans(ctx context.Context, limit int) ([]storage.PlanRecord, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    Store
	gen      *plan.Generator
	resolver *resolve.Resolver
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, gen *plan.Generator, resolver *resolve.Resolver, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:    store,
		gen:      gen,
		resolver: resolver,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	// Plan generation (API key required for writes)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/", s.handleGeneratePlan)
		r.Get("/", s.handleListPlans)
		r.Get("/{id}", s.handleGetPlan)
	})

	// Catalog endpoints (read-only, no auth)
	s.router.Get("/api/v1/exercises", s.handleSearchExercises)
	s.router.Get("/api/v1/exercises/resolve", s.handleResolveExercise)
	s.router.Get("/api/v1/exercises/{id}", s.handleGetExercise)
}
