package plan

import "fmt"

// Rules are the repo-wide generation ceilings and floors. They cap what
// the per-goal policy tables produce, so a table change cannot emit a
// plan that violates them.
type Rules struct {
	MaxSetsPerExercise        int // per-exercise set ceiling for Push/Pull/Legs days
	MaxSetsFullBodyUpperLower int // tighter ceiling for Full Body, Upper and Lower days
	TargetSetsPerWorkout      int // soft target, not enforced
	MaxRepsPerSet             int
	MinRestSeconds            int
	MajorMuscleGroupsPerWeek  int // weekly frequency target per major group
}

// DefaultRules are the ceilings applied by NewGenerator.
var DefaultRules = Rules{
	MaxSetsPerExercise:        4,
	MaxSetsFullBodyUpperLower: 3,
	TargetSetsPerWorkout:      20,
	MaxRepsPerSet:             20,
	MinRestSeconds:            30,
	MajorMuscleGroupsPerWeek:  2,
}

// CardioPolicy is the per-goal cardio recommendation.
type CardioPolicy struct {
	Recommended bool   `json:"recommended"`
	Frequency   string `json:"frequency"`
	Note        string `json:"note"`
}

// GoalSettings is the fully resolved policy for a goal+experience pair:
// base sets/reps/rest plus the goal's focus areas and cardio policy.
// Experience adaptation is already applied to the rep range.
type GoalSettings struct {
	Sets        int          `json:"sets"`
	Reps        RepRange     `json:"reps"`
	RestSeconds int          `json:"rest"`
	FocusAreas  []string     `json:"focusAreas"`
	Cardio      CardioPolicy `json:"cardio"`
}

// AgeBand buckets ages for adaptation lookups.
type AgeBand string

const (
	BandUnder30 AgeBand = "under30"
	Band30to49  AgeBand = "age30to49"
	Band50Plus  AgeBand = "age50Plus"
)

// AgeAdaptation describes the adjustments for an age band. The
// equipment restrictions are enforced during exercise selection; the
// note is informational.
type AgeAdaptation struct {
	Band                  AgeBand
	EquipmentRestrictions []string
	Note                  string
}

// GenderAdaptation records which muscle groups a gender's templates
// emphasize. The banded templates already encode the emphasis, so this
// is returned as data for the caller rather than applied as a second
// selection bias.
type GenderAdaptation struct {
	Emphasis []string
	Note     string
}

// ExperienceAdaptation adjusts policy output per experience level.
// RepRangeAdd is added to both ends of the resolved rep range.
type ExperienceAdaptation struct {
	Note               string
	PreferredEquipment []string
	RepRangeAdd        int
}

var repRanges = map[Goal]map[Experience]RepRange{
	GoalLoseWeight: {
		ExperienceNovice:      {Min: 12, Max: 15},
		ExperienceExperienced: {Min: 12, Max: 15},
		ExperienceAdvanced:    {Min: 15, Max: 18},
	},
	GoalGainMuscle: {
		ExperienceNovice:      {Min: 8, Max: 12},
		ExperienceExperienced: {Min: 8, Max: 12},
		ExperienceAdvanced:    {Min: 6, Max: 12},
	},
	GoalGainStrength: {
		ExperienceNovice:      {Min: 5, Max: 8},
		ExperienceExperienced: {Min: 4, Max: 6},
		ExperienceAdvanced:    {Min: 2, Max: 5},
	},
	GoalMaintainMuscle: {
		ExperienceNovice:      {Min: 10, Max: 12},
		ExperienceExperienced: {Min: 8, Max: 12},
		ExperienceAdvanced:    {Min: 8, Max: 12},
	},
}

var setsPerExercise = map[Goal]int{
	GoalLoseWeight:     3,
	GoalGainMuscle:     4,
	GoalGainStrength:   5,
	GoalMaintainMuscle: 3,
}

var restSeconds = map[Goal]int{
	GoalLoseWeight:     45,
	GoalGainMuscle:     90,
	GoalGainStrength:   180,
	GoalMaintainMuscle: 60,
}

var focusAreas = map[Goal][]string{
	GoalLoseWeight:     {"full body", "compound movements", "conditioning"},
	GoalGainMuscle:     {"progressive overload", "volume", "isolation finishers"},
	GoalGainStrength:   {"heavy compounds", "low reps", "long rest"},
	GoalMaintainMuscle: {"balanced volume", "movement variety"},
}

var cardioPolicies = map[Goal]CardioPolicy{
	GoalLoseWeight: {
		Recommended: true,
		Frequency:   "4-5 sessions per week",
		Note:        "20-30 minutes of moderate cardio after lifting or on rest days",
	},
	GoalGainMuscle: {
		Recommended: false,
		Frequency:   "1-2 short sessions per week",
		Note:        "keep cardio brief so it does not cut into recovery",
	},
	GoalGainStrength: {
		Recommended: false,
		Frequency:   "1 light session per week",
		Note:        "light conditioning only; prioritize recovery between heavy sessions",
	},
	GoalMaintainMuscle: {
		Recommended: true,
		Frequency:   "2-3 sessions per week",
		Note:        "mix moderate cardio with lifting to maintain overall fitness",
	},
}

var genderAdaptations = map[Gender]GenderAdaptation{
	GenderMale: {
		Emphasis: []string{"chest", "back", "shoulders"},
		Note:     "templates weight upper-body pressing and pulling slightly heavier",
	},
	GenderFemale: {
		Emphasis: []string{"glutes", "legs", "core"},
		Note:     "templates weight hip-dominant and lower-body work slightly heavier",
	},
	GenderPreferNotToSay: {
		Emphasis: nil,
		Note:     "balanced templates with no group emphasis",
	},
}

var experienceAdaptations = map[Experience]ExperienceAdaptation{
	ExperienceNovice: {
		Note:               "higher reps at lighter loads to groove technique",
		PreferredEquipment: []string{"machine", "dumbbell", "body weight"},
		RepRangeAdd:        2,
	},
	ExperienceExperienced: {
		Note:               "standard loading, free weights preferred",
		PreferredEquipment: []string{"barbell", "dumbbell", "cable"},
		RepRangeAdd:        0,
	},
	ExperienceAdvanced: {
		Note:               "full intensity techniques available",
		PreferredEquipment: []string{"barbell", "dumbbell", "cable", "leverage machine"},
		RepRangeAdd:        0,
	},
}

// RepRangeFor looks up the base rep range for a goal+experience pair.
// A missing combination is a table bug, reported as ConfigurationError.
func RepRangeFor(goal Goal, exp Experience) (RepRange, error) {
	byExp, ok := repRanges[goal]
	if !ok {
		return RepRange{}, &ConfigurationError{Detail: fmt.Sprintf("no rep range table for goal %q", goal)}
	}
	r, ok := byExp[exp]
	if !ok {
		return RepRange{}, &ConfigurationError{Detail: fmt.Sprintf("no rep range for goal %q, experience %q", goal, exp)}
	}
	return r, nil
}

// SetsFor returns the per-exercise set count for a goal, before the
// generator applies the day-focus ceiling.
func SetsFor(goal Goal) (int, error) {
	s, ok := setsPerExercise[goal]
	if !ok {
		return 0, &ConfigurationError{Detail: fmt.Sprintf("no set count for goal %q", goal)}
	}
	return s, nil
}

// RestFor returns the between-set rest in seconds for a goal.
func RestFor(goal Goal) (int, error) {
	r, ok := restSeconds[goal]
	if !ok {
		return 0, &ConfigurationError{Detail: fmt.Sprintf("no rest time for goal %q", goal)}
	}
	return r, nil
}

// CardioPolicyFor returns the cardio recommendation for a goal.
func CardioPolicyFor(goal Goal) (CardioPolicy, error) {
	c, ok := cardioPolicies[goal]
	if !ok {
		return CardioPolicy{}, &ConfigurationError{Detail: fmt.Sprintf("no cardio policy for goal %q", goal)}
	}
	return c, nil
}

// AgeAdaptationFor buckets an age into its band: under 30, 30-49, or
// 50 and over. Callers should validate the age first; non-positive ages
// land in the under-30 band.
func AgeAdaptationFor(age int) AgeAdaptation {
	switch {
	case age >= 50:
		return AgeAdaptation{
			Band:                  Band50Plus,
			EquipmentRestrictions: []string{"barbell", "olympic barbell"},
			Note:                  "joint-friendly selection; barbell movements are replaced with dumbbell or machine variants",
		}
	case age >= 30:
		return AgeAdaptation{
			Band: Band30to49,
			Note: "full selection with extra attention to warm-up and controlled tempo",
		}
	default:
		return AgeAdaptation{
			Band: BandUnder30,
			Note: "no age-specific restrictions",
		}
	}
}

// GenderAdaptationFor returns the emphasis data for a gender.
func GenderAdaptationFor(g Gender) (GenderAdaptation, error) {
	a, ok := genderAdaptations[g]
	if !ok {
		return GenderAdaptation{}, &ConfigurationError{Detail: fmt.Sprintf("no gender adaptation for %q", g)}
	}
	return a, nil
}

// ExperienceAdaptationFor returns the adjustments for an experience level.
func ExperienceAdaptationFor(exp Experience) (ExperienceAdaptation, error) {
	a, ok := experienceAdaptations[exp]
	if !ok {
		return ExperienceAdaptation{}, &ConfigurationError{Detail: fmt.Sprintf("no experience adaptation for %q", exp)}
	}
	return a, nil
}

// GoalSettingsFor resolves the complete policy for a goal+experience
// pair: rep range with the experience adjustment applied, set count,
// rest time, focus areas, and cardio policy. The rep-range maximum is
// clamped to rules.MaxRepsPerSet after adjustment.
func GoalSettingsFor(goal Goal, exp Experience, rules Rules) (GoalSettings, error) {
	reps, err := RepRangeFor(goal, exp)
	if err != nil {
		return GoalSettings{}, err
	}
	sets, err := SetsFor(goal)
	if err != nil {
		return GoalSettings{}, err
	}
	rest, err := RestFor(goal)
	if err != nil {
		return GoalSettings{}, err
	}
	cardio, err := CardioPolicyFor(goal)
	if err != nil {
		return GoalSettings{}, err
	}
	adapt, err := ExperienceAdaptationFor(exp)
	if err != nil {
		return GoalSettings{}, err
	}

	reps.Min += adapt.RepRangeAdd
	reps.Max += adapt.RepRangeAdd
	if reps.Max > rules.MaxRepsPerSet {
		reps.Max = rules.MaxRepsPerSet
	}
	if reps.Min > reps.Max {
		reps.Min = reps.Max
	}
	if rest < rules.MinRestSeconds {
		rest = rules.MinRestSeconds
	}

	return GoalSettings{
		Sets:        sets,
		Reps:        reps,
		RestSeconds: rest,
		FocusAreas:  focusAreas[goal],
		Cardio:      cardio,
	}, nil
}
