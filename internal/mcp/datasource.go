package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	AllExercises(ctx context.Context) ([]catalog.Exercise, error)
	SearchExercises(ctx context.Context, nameQuery, bodyPart string, limit int) ([]catalog.Exercise, error)
	GetExercise(ctx context.Context, id string) (*catalog.Exercise, error)
	CountExercises(ctx context.Context) (int, error)
	InsertPlan(ctx context.Context, profile plan.UserProfile, generated *plan.GeneratedWorkoutPlan) (uuid.UUID, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRecord, error)
	ListPlans(ctx context.Context, limit int) ([]storage.PlanRecord, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
