package mcp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
	"github.com/claude/planforge/internal/storage"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_workout_plan",
	mcp.WithDescription("Generate a multi-day workout plan from a user profile. Exercises are resolved against the catalog; unresolvable slots stay in the plan with an empty exerciseId."),
	mcp.WithNumber("age", mcp.Required(), mcp.Description("User age in years")),
	mcp.WithString("gender", mcp.Required(), mcp.Description("User gender"), mcp.Enum("male", "female", "prefer_not_to_say")),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("lose_weight", "gain_muscle", "gain_strength", "maintain_muscle")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Experience level"), mcp.Enum("novice", "experienced", "advanced")),
	mcp.WithNumber("days_per_week", mcp.Required(), mcp.Description("Training days per week (1-6)")),
	mcp.WithBoolean("save", mcp.Description("Store the generated plan so it can be fetched later. Defaults to false.")),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search the exercise catalog by name substring and/or body part."),
	mcp.WithString("query", mcp.Description("Case-insensitive name substring (e.g. 'bench press')")),
	mcp.WithString("body_part", mcp.Description("Filter by body part (e.g. 'chest', 'back', 'upper legs')")),
	mcp.WithNumber("limit", mcp.Description("Maximum results. Defaults to 20.")),
)

var toolResolveExercise = mcp.NewTool("resolve_exercise",
	mcp.WithDescription("Resolve a free-form exercise name against the catalog. Returns ranked candidates with similarity scores; exact alias matches rank first."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name to resolve (e.g. 'Barbell Bench Press')")),
)

var toolGetGoalPolicy = mcp.NewTool("get_goal_policy",
	mcp.WithDescription("Inspect the sets/reps/rest policy a goal and experience level would produce, including the cardio recommendation."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("lose_weight", "gain_muscle", "gain_strength", "maintain_muscle")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Experience level"), mcp.Enum("novice", "experienced", "advanced")),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Fetch a previously stored workout plan by ID."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan UUID")),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List stored workout plans, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum results. Defaults to 10.")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	age, err := req.RequireInt("age")
	if err != nil {
		return mcp.NewToolResultError("age parameter is required"), nil
	}
	gender, err := req.RequireString("gender")
	if err != nil {
		return mcp.NewToolResultError("gender parameter is required"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	experience, err := req.RequireString("experience")
	if err != nil {
		return mcp.NewToolResultError("experience parameter is required"), nil
	}
	days, err := req.RequireInt("days_per_week")
	if err != nil {
		return mcp.NewToolResultError("days_per_week parameter is required"), nil
	}

	profile := plan.UserProfile{
		Age:         age,
		Gender:      plan.Gender(gender),
		Goal:        plan.Goal(goal),
		Experience:  plan.Experience(experience),
		DaysPerWeek: days,
	}

	cat, err := h.ds.AllExercises(ctx)
	if err != nil {
		h.log.Error("mcp generate_workout_plan catalog", "error", err)
		return mcp.NewToolResultError("catalog load failed: " + err.Error()), nil
	}

	generated, err := h.gen.Generate(profile, cat)
	if err != nil {
		var verr *plan.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Error()), nil
		}
		h.log.Error("mcp generate_workout_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	out := map[string]any{
		"plan":     generated.Days,
		"notes":    generated.Notes,
		"warnings": generated.Warnings,
	}

	if req.GetBool("save", false) {
		id, err := h.ds.InsertPlan(ctx, profile, generated)
		if err != nil {
			h.log.Error("mcp generate_workout_plan save", "error", err)
			return mcp.NewToolResultError("storing plan failed: " + err.Error()), nil
		}
		out["id"] = id
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	bodyPart := req.GetString("body_part", "")
	limit := req.GetInt("limit", 20)

	entries, err := h.ds.SearchExercises(ctx, query, bodyPart, limit)
	if err != nil {
		h.log.Error("mcp search_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) resolveExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	cat, err := h.ds.AllExercises(ctx)
	if err != nil {
		h.log.Error("mcp resolve_exercise", "error", err)
		return mcp.NewToolResultError("catalog load failed: " + err.Error()), nil
	}

	candidates := h.resolver.Rank(name, resolve.NewIndex(cat))
	out := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, map[string]any{
			"exercise": c.Exercise,
			"score":    c.Score,
			"exact":    c.Exact,
		})
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"name": name, "candidates": out})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getGoalPolicy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goalStr, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	expStr, err := req.RequireString("experience")
	if err != nil {
		return mcp.NewToolResultError("experience parameter is required"), nil
	}

	goal, err := plan.ParseGoal(goalStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exp, err := plan.ParseExperience(expStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings, err := plan.GoalSettingsFor(goal, exp, plan.DefaultRules)
	if err != nil {
		return mcp.NewToolResultError("policy lookup failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"goal":        goal,
		"experience":  exp,
		"sets":        settings.Sets,
		"reps":        settings.Reps,
		"rest":        settings.RestSeconds,
		"focus_areas": settings.FocusAreas,
		"cardio":      settings.Cardio,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid plan ID: " + err.Error()), nil
	}

	rec, err := h.ds.GetPlan(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("plan not found"), nil
	}
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)

	records, err := h.ds.ListPlans(ctx, limit)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
