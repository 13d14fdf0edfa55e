package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/planforge/internal/plan"
)

func (h *handlers) splits(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	splits := map[int][]plan.Focus{}
	for days := plan.MinDaysPerWeek; days <= plan.MaxDaysPerWeek; days++ {
		split, err := plan.SplitFor(days)
		if err != nil {
			return nil, err
		}
		splits[days] = split
	}

	return jsonResource(req.Params.URI, splits)
}

func (h *handlers) policies(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	goals := []plan.Goal{plan.GoalLoseWeight, plan.GoalGainMuscle, plan.GoalGainStrength, plan.GoalMaintainMuscle}
	levels := []plan.Experience{plan.ExperienceNovice, plan.ExperienceExperienced, plan.ExperienceAdvanced}

	policies := map[plan.Goal]map[plan.Experience]plan.GoalSettings{}
	for _, goal := range goals {
		policies[goal] = map[plan.Experience]plan.GoalSettings{}
		for _, exp := range levels {
			settings, err := plan.GoalSettingsFor(goal, exp, plan.DefaultRules)
			if err != nil {
				return nil, err
			}
			policies[goal][exp] = settings
		}
	}

	return jsonResource(req.Params.URI, policies)
}

func (h *handlers) catalogStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	count, err := h.ds.CountExercises(ctx)
	if err != nil {
		return nil, err
	}

	return jsonResource(req.Params.URI, map[string]int{"exercises": count})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
