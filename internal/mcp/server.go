package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, gen *plan.Generator, resolver *resolve.Resolver, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanForge workout plan server. Generate multi-day workout plans from a user profile, search the exercise catalog, and inspect the goal policies driving plan generation."),
	)

	h := &handlers{ds: ds, gen: gen, resolver: resolver, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolSearchExercises, Handler: h.searchExercises},
		server.ServerTool{Tool: toolResolveExercise, Handler: h.resolveExercise},
		server.ServerTool{Tool: toolGetGoalPolicy, Handler: h.getGoalPolicy},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resSplits, Handler: h.splits},
		server.ServerResource{Resource: resPolicies, Handler: h.policies},
		server.ServerResource{Resource: resCatalogStats, Handler: h.catalogStats},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds       DataSource
	gen      *plan.Generator
	resolver *resolve.Resolver
	log      *slog.Logger
}

// --- Resource definitions ---

var resSplits = mcp.NewResource(
	"planforge://splits",
	"Training Splits",
	mcp.WithResourceDescription("The workout split used for each supported training frequency (1-6 days per week)"),
	mcp.WithMIMEType("application/json"),
)

var resPolicies = mcp.NewResource(
	"planforge://policies",
	"Goal Policies",
	mcp.WithResourceDescription("Resolved sets/reps/rest policy for every goal and experience level, including cardio recommendations"),
	mcp.WithMIMEType("application/json"),
)

var resCatalogStats = mcp.NewResource(
	"planforge://catalog_stats",
	"Catalog Stats",
	mcp.WithResourceDescription("Exercise catalog size"),
	mcp.WithMIMEType("application/json"),
)
