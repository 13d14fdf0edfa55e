package plan

// RepRange is an inclusive repetition range for a set.
type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// GeneratedExercise is one exercise slot in a workout day. ExerciseID
// is empty when no catalog entry could be resolved with confidence; the
// caller is expected to surface such slots for manual fix-up.
type GeneratedExercise struct {
	Name        string   `json:"name"`
	BodyPart    string   `json:"bodyPart,omitempty"`
	Target      string   `json:"target,omitempty"`
	Equipment   string   `json:"equipment,omitempty"`
	Sets        int      `json:"sets"`
	Reps        RepRange `json:"reps"`
	RestSeconds int      `json:"rest"`
	ExerciseID  string   `json:"exerciseId"`
}

// Resolved reports whether the slot was matched to a catalog entry.
func (e GeneratedExercise) Resolved() bool { return e.ExerciseID != "" }

// WorkoutDay is one training day of the plan.
type WorkoutDay struct {
	Day       int                 `json:"day"`
	Focus     Focus               `json:"focus"`
	Exercises []GeneratedExercise `json:"exercises"`
}

// PlanNotes carries the cardio recommendation attached to a plan.
type PlanNotes struct {
	Cardio         bool   `json:"cardio"`
	Recommendation string `json:"recommendation"`
}

// GeneratedWorkoutPlan is the root output of a generation call. It is
// produced once and never mutated afterwards; Warnings records soft
// constraint misses (e.g. a muscle group trained below the weekly
// target) that do not fail generation.
type GeneratedWorkoutPlan struct {
	Days     []WorkoutDay `json:"plan"`
	Notes    PlanNotes    `json:"notes"`
	Warnings []string     `json:"warnings,omitempty"`
}
