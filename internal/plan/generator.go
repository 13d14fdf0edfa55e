package plan

import (
	"fmt"
	"log/slog"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/resolve"
)

// Generator produces workout plans. It is safe for concurrent use:
// generation reads only static tables and call-local state.
type Generator struct {
	resolver *resolve.Resolver
	rules    Rules
	log      *slog.Logger
}

// Options configures a Generator. Zero values select the defaults
// (DefaultThreshold, DefaultRules, a no-op logger discard is not used —
// nil falls back to slog.Default).
type Options struct {
	FuzzyThreshold float64
	Rules          Rules
	Logger         *slog.Logger
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts Options) *Generator {
	rules := opts.Rules
	if rules == (Rules{}) {
		rules = DefaultRules
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{
		resolver: resolve.New(opts.FuzzyThreshold),
		rules:    rules,
		log:      log,
	}
}

// Generate builds a workout plan for the profile against the supplied
// catalog. Structural problems (invalid profile, missing tables) return
// an error; per-exercise resolution misses degrade to placeholder slots
// and never abort generation.
func (g *Generator) Generate(profile UserProfile, cat []catalog.Exercise) (*GeneratedWorkoutPlan, error) {
	profile, err := profile.Normalize()
	if err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	split, err := SplitFor(profile.DaysPerWeek)
	if err != nil {
		return nil, err
	}

	settings, err := GoalSettingsFor(profile.Goal, profile.Experience, g.rules)
	if err != nil {
		return nil, err
	}

	band := BandFor(profile.Age, profile.Gender)
	ageAdapt := AgeAdaptationFor(profile.Age)

	// Normalize catalog names once for the whole generation run.
	idx := resolve.NewIndex(cat)

	days := make([]WorkoutDay, 0, len(split))
	unresolved := 0
	for i, focus := range split {
		day, misses, err := g.buildDay(i+1, focus, band, settings, ageAdapt, idx)
		if err != nil {
			return nil, err
		}
		unresolved += misses
		days = append(days, day)
	}

	out := &GeneratedWorkoutPlan{
		Days: days,
		Notes: PlanNotes{
			Cardio:         settings.Cardio.Recommended,
			Recommendation: fmt.Sprintf("%s: %s", settings.Cardio.Frequency, settings.Cardio.Note),
		},
	}
	out.Warnings = g.weeklyFrequencyWarnings(split)

	if unresolved > 0 {
		g.log.Warn("plan generated with unresolved exercise slots",
			"unresolved", unresolved,
			"catalog_size", idx.Len(),
			"days", profile.DaysPerWeek,
		)
	}

	return out, nil
}

// buildDay assembles one workout day. Returns the day and the number of
// slots that could not be resolved against the catalog.
func (g *Generator) buildDay(dayNum int, focus Focus, band Band, settings GoalSettings, ageAdapt AgeAdaptation, idx *resolve.Index) (WorkoutDay, int, error) {
	tmpl, err := TemplateFor(focus, band)
	if err != nil {
		return WorkoutDay{}, 0, err
	}

	maxSets := g.rules.MaxSetsPerExercise
	if isReducedSetFocus(focus) {
		maxSets = g.rules.MaxSetsFullBodyUpperLower
	}
	sets := settings.Sets
	if sets > maxSets {
		sets = maxSets
	}

	day := WorkoutDay{Day: dayNum, Focus: focus}
	misses := 0
	for _, entry := range tmpl {
		ex, resolved := g.pickExercise(entry.Name, focus, ageAdapt.EquipmentRestrictions, idx)
		if !resolved {
			misses++
		}
		ex.Sets = sets
		ex.Reps = settings.Reps
		ex.RestSeconds = settings.RestSeconds
		day.Exercises = append(day.Exercises, ex)
	}

	return day, misses, nil
}

// pickExercise resolves a template slot into a concrete exercise.
// Order of preference: best non-restricted ranked candidate for the
// template name, then the focus's bodyweight fallback pool, then a
// placeholder (empty ExerciseID) carrying the template name so the
// caller can surface it for manual selection.
func (g *Generator) pickExercise(name string, focus Focus, restricted []string, idx *resolve.Index) (GeneratedExercise, bool) {
	if c, ok := firstAllowed(g.resolver.Rank(name, idx), restricted); ok {
		return fromCatalog(c), true
	}

	for _, alt := range fallbackPools[focus] {
		if c, ok := firstAllowed(g.resolver.Rank(alt, idx), restricted); ok {
			return fromCatalog(c), true
		}
	}

	// Placeholder slot with an empty ExerciseID. When the primary pick
	// exists in the catalog but every candidate is equipment-restricted,
	// naming it would suggest the user perform it anyway, so the slot
	// carries the pool's bodyweight-equivalent name instead.
	placeholder := GeneratedExercise{Name: name}
	if restrictedOnly(g.resolver.Rank(name, idx), restricted) {
		if pool := fallbackPools[focus]; len(pool) > 0 {
			placeholder.Name = pool[0]
			placeholder.Equipment = "body weight"
		}
	}
	return placeholder, false
}

// firstAllowed returns the first candidate whose equipment is not in
// the restriction list.
func firstAllowed(ranked []resolve.Candidate, restricted []string) (catalog.Exercise, bool) {
	for _, c := range ranked {
		if !equipmentRestricted(c.Exercise.Equipment, restricted) {
			return c.Exercise, true
		}
	}
	return catalog.Exercise{}, false
}

// restrictedOnly reports whether the name matched the catalog but every
// candidate was equipment-restricted.
func restrictedOnly(ranked []resolve.Candidate, restricted []string) bool {
	if len(ranked) == 0 {
		return false
	}
	for _, c := range ranked {
		if !equipmentRestricted(c.Exercise.Equipment, restricted) {
			return false
		}
	}
	return true
}

func equipmentRestricted(equipment string, restricted []string) bool {
	for _, r := range restricted {
		if equipment == r {
			return true
		}
	}
	return false
}

func fromCatalog(c catalog.Exercise) GeneratedExercise {
	return GeneratedExercise{
		Name:       c.Name,
		BodyPart:   c.BodyPart,
		Target:     c.Target,
		Equipment:  c.Equipment,
		ExerciseID: c.ID,
	}
}

// weeklyFrequencyWarnings checks the assembled split against the weekly
// major-muscle-group frequency target. Misses are soft: they become
// warnings on the plan, never errors.
func (g *Generator) weeklyFrequencyWarnings(split []Focus) []string {
	counts := make(map[string]int, len(majorGroups))
	for _, focus := range split {
		for _, group := range majorGroupCoverage[focus] {
			counts[group]++
		}
	}

	var warnings []string
	for _, group := range majorGroups {
		if counts[group] < g.rules.MajorMuscleGroupsPerWeek {
			warnings = append(warnings, fmt.Sprintf(
				"%s is trained %d time(s) this week, below the target of %d",
				group, counts[group], g.rules.MajorMuscleGroupsPerWeek,
			))
		}
	}
	return warnings
}
