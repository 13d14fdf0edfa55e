package plan

import "fmt"

// Focus is the muscle-group theme of a training day.
type Focus string

const (
	FocusPush     Focus = "Push"
	FocusPull     Focus = "Pull"
	FocusLegs     Focus = "Legs"
	FocusUpper    Focus = "Upper"
	FocusLower    Focus = "Lower"
	FocusFullBody Focus = "Full Body"
)

// Band is the audience variant of a workout template. Seniors (age 50+)
// get their own band regardless of gender; PreferNotToSay maps to the
// neutral band.
type Band string

const (
	BandMale    Band = "male"
	BandFemale  Band = "female"
	BandSenior  Band = "senior"
	BandNeutral Band = "neutral"
)

// TemplateExercise is one authored slot in a workout template. The
// literal sets/reps/rest are the authored baseline; the generator
// overrides them from the goal policy and experience adaptation.
type TemplateExercise struct {
	Name        string
	Sets        int
	Reps        RepRange
	RestSeconds int
}

// splitTemplates maps training days per week to the ordered day
// focuses. Covers every value in [MinDaysPerWeek, MaxDaysPerWeek].
var splitTemplates = map[int][]Focus{
	1: {FocusFullBody},
	2: {FocusFullBody, FocusFullBody},
	3: {FocusPush, FocusPull, FocusLegs},
	4: {FocusUpper, FocusLower, FocusUpper, FocusLower},
	5: {FocusPush, FocusPull, FocusLegs, FocusUpper, FocusLower},
	6: {FocusPush, FocusPull, FocusLegs, FocusPush, FocusPull, FocusLegs},
}

// workoutTemplates holds the banded exercise lists per focus. Names are
// canonical template names; the resolver maps them onto the catalog.
var workoutTemplates = map[Focus]map[Band][]TemplateExercise{
	FocusPush: {
		BandMale: {
			{Name: "Barbell Bench Press", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Overhead Press", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Incline Dumbbell Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Lateral Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Tricep Pushdown", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
		},
		BandFemale: {
			{Name: "Dumbbell Bench Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Incline Dumbbell Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Lateral Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
			{Name: "Tricep Extension", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Machine Chest Press", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 90},
			{Name: "Chest Fly", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Lateral Raise", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Tricep Extension", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Barbell Bench Press", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Chest Fly", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Lateral Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Tricep Pushdown", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
		},
	},
	FocusPull: {
		BandMale: {
			{Name: "Deadlift", Sets: 4, Reps: RepRange{Min: 5, Max: 8}, RestSeconds: 120},
			{Name: "Pull Up", Sets: 3, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 90},
			{Name: "Barbell Row", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Seated Cable Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Barbell Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
		},
		BandFemale: {
			{Name: "Romanian Deadlift", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Face Pull", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
			{Name: "Dumbbell Curl", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Seated Cable Row", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Dumbbell Row", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Face Pull", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Dumbbell Curl", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Deadlift", Sets: 4, Reps: RepRange{Min: 5, Max: 8}, RestSeconds: 120},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Face Pull", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
			{Name: "Dumbbell Curl", Sets: 3, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
		},
	},
	FocusLegs: {
		BandMale: {
			{Name: "Barbell Squat", Sets: 4, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Romanian Deadlift", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Leg Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 90},
			{Name: "Leg Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 20}, RestSeconds: 45},
		},
		BandFemale: {
			{Name: "Barbell Squat", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Hip Thrust", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Bulgarian Split Squat", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Leg Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 15, Max: 20}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Leg Press", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Goblet Squat", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 90},
			{Name: "Leg Curl", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Leg Extension", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Barbell Squat", Sets: 4, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Romanian Deadlift", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Walking Lunge", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Leg Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 20}, RestSeconds: 45},
		},
	},
	FocusUpper: {
		BandMale: {
			{Name: "Barbell Bench Press", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Barbell Row", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Overhead Press", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Barbell Curl", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Tricep Pushdown", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
		},
		BandFemale: {
			{Name: "Dumbbell Bench Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Seated Cable Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Curl", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
			{Name: "Tricep Extension", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Machine Chest Press", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Seated Cable Row", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Dumbbell Shoulder Press", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 90},
			{Name: "Lat Pulldown", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Dumbbell Curl", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Barbell Bench Press", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Seated Cable Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Hammer Curl", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 45},
			{Name: "Tricep Pushdown", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 45},
		},
	},
	FocusLower: {
		BandMale: {
			{Name: "Barbell Squat", Sets: 4, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Romanian Deadlift", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Walking Lunge", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Leg Extension", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 20}, RestSeconds: 45},
		},
		BandFemale: {
			{Name: "Hip Thrust", Sets: 4, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Goblet Squat", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Bulgarian Split Squat", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Leg Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 15, Max: 20}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Leg Press", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Leg Extension", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Leg Curl", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Glute Bridge", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 2, Reps: RepRange{Min: 12, Max: 15}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Barbell Squat", Sets: 4, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Hip Thrust", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Walking Lunge", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Leg Curl", Sets: 3, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 60},
			{Name: "Calf Raise", Sets: 3, Reps: RepRange{Min: 12, Max: 20}, RestSeconds: 45},
		},
	},
	FocusFullBody: {
		BandMale: {
			{Name: "Barbell Squat", Sets: 3, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Barbell Bench Press", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Barbell Row", Sets: 3, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Overhead Press", Sets: 2, Reps: RepRange{Min: 8, Max: 12}, RestSeconds: 90},
			{Name: "Plank", Sets: 3, Reps: RepRange{Min: 30, Max: 60}, RestSeconds: 45},
		},
		BandFemale: {
			{Name: "Goblet Squat", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Bench Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Lat Pulldown", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Hip Thrust", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Plank", Sets: 3, Reps: RepRange{Min: 30, Max: 60}, RestSeconds: 45},
		},
		BandSenior: {
			{Name: "Leg Press", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Machine Chest Press", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Seated Cable Row", Sets: 2, Reps: RepRange{Min: 10, Max: 15}, RestSeconds: 90},
			{Name: "Dumbbell Shoulder Press", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 90},
			{Name: "Plank", Sets: 2, Reps: RepRange{Min: 20, Max: 40}, RestSeconds: 60},
		},
		BandNeutral: {
			{Name: "Barbell Squat", Sets: 3, Reps: RepRange{Min: 6, Max: 10}, RestSeconds: 120},
			{Name: "Dumbbell Bench Press", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Row", Sets: 3, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Dumbbell Shoulder Press", Sets: 2, Reps: RepRange{Min: 10, Max: 12}, RestSeconds: 60},
			{Name: "Plank", Sets: 3, Reps: RepRange{Min: 30, Max: 60}, RestSeconds: 45},
		},
	},
}

// fallbackPools are per-focus bodyweight-equivalent template names used
// when a primary pick is equipment-restricted (or unresolvable) and no
// other ranked candidate is acceptable. A day never ends up empty
// because of restrictions: the last resort is a placeholder built from
// the first pool entry.
var fallbackPools = map[Focus][]string{
	FocusPush:     {"Push Up", "Pike Push Up", "Dip"},
	FocusPull:     {"Inverted Row", "Superman", "Chin Up"},
	FocusLegs:     {"Bodyweight Squat", "Walking Lunge", "Glute Bridge"},
	FocusUpper:    {"Push Up", "Inverted Row", "Pike Push Up"},
	FocusLower:    {"Bodyweight Squat", "Glute Bridge", "Step Up"},
	FocusFullBody: {"Bodyweight Squat", "Push Up", "Inverted Row", "Plank"},
}

// majorGroupCoverage maps each focus to the major muscle groups a day
// with that focus trains. Used for the weekly frequency check.
var majorGroupCoverage = map[Focus][]string{
	FocusPush:     {"chest", "shoulders"},
	FocusPull:     {"back"},
	FocusLegs:     {"legs"},
	FocusUpper:    {"chest", "back", "shoulders"},
	FocusLower:    {"legs"},
	FocusFullBody: {"chest", "back", "shoulders", "legs"},
}

// majorGroups is the canonical order for weekly frequency warnings.
var majorGroups = []string{"chest", "back", "shoulders", "legs"}

// SplitFor returns the ordered day focuses for a validated days-per-week
// value. A missing entry is a table bug.
func SplitFor(daysPerWeek int) ([]Focus, error) {
	split, ok := splitTemplates[daysPerWeek]
	if !ok {
		return nil, &ConfigurationError{Detail: fmt.Sprintf("no split template for %d days per week", daysPerWeek)}
	}
	return split, nil
}

// TemplateFor returns the authored exercise list for a focus and band.
func TemplateFor(focus Focus, band Band) ([]TemplateExercise, error) {
	byBand, ok := workoutTemplates[focus]
	if !ok {
		return nil, &ConfigurationError{Detail: fmt.Sprintf("no workout template for focus %q", focus)}
	}
	list, ok := byBand[band]
	if !ok {
		return nil, &ConfigurationError{Detail: fmt.Sprintf("no %q band for focus %q", band, focus)}
	}
	return list, nil
}

// BandFor selects the audience band: senior from age 50, otherwise by
// gender with PreferNotToSay mapping to the neutral band.
func BandFor(age int, gender Gender) Band {
	if age >= 50 {
		return BandSenior
	}
	switch gender {
	case GenderMale:
		return BandMale
	case GenderFemale:
		return BandFemale
	default:
		return BandNeutral
	}
}

// isReducedSetFocus reports whether the focus uses the tighter
// full-body/upper/lower set ceiling.
func isReducedSetFocus(f Focus) bool {
	return f == FocusFullBody || f == FocusUpper || f == FocusLower
}
