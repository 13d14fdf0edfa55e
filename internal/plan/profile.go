// Package plan generates multi-day workout plans from a user profile
// and an exercise catalog. Static policy tables (rules.go, templates.go)
// drive all decisions; generation itself is pure and deterministic.
package plan

import (
	"fmt"
	"strings"
)

// Gender selects the audience band for exercise templates.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// Goal is the user's primary training goal.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalGainMuscle     Goal = "gain_muscle"
	GoalGainStrength   Goal = "gain_strength"
	GoalMaintainMuscle Goal = "maintain_muscle"
)

// Experience is the user's training experience level.
type Experience string

const (
	ExperienceNovice      Experience = "novice"
	ExperienceExperienced Experience = "experienced"
	ExperienceAdvanced    Experience = "advanced"
)

// UserProfile is the immutable input to a generation call.
type UserProfile struct {
	Age         int        `json:"age"`
	Gender      Gender     `json:"gender"`
	Goal        Goal       `json:"goal"`
	Experience  Experience `json:"experience"`
	DaysPerWeek int        `json:"daysPerWeek"`
}

// MinDaysPerWeek and MaxDaysPerWeek bound the supported split sizes.
const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 6
)

// Validate checks the profile and returns a *ValidationError naming the
// first offending field. Out-of-range values are rejected, never
// clamped.
func (p UserProfile) Validate() error {
	if p.Age <= 0 {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be positive, got %d", p.Age)}
	}
	if p.DaysPerWeek < MinDaysPerWeek || p.DaysPerWeek > MaxDaysPerWeek {
		return &ValidationError{Field: "daysPerWeek", Message: fmt.Sprintf("must be between %d and %d, got %d", MinDaysPerWeek, MaxDaysPerWeek, p.DaysPerWeek)}
	}
	if _, err := ParseGender(string(p.Gender)); err != nil {
		return &ValidationError{Field: "gender", Message: fmt.Sprintf("unrecognized value %q", p.Gender)}
	}
	if _, err := ParseGoal(string(p.Goal)); err != nil {
		return &ValidationError{Field: "goal", Message: fmt.Sprintf("unrecognized value %q", p.Goal)}
	}
	if _, err := ParseExperience(string(p.Experience)); err != nil {
		return &ValidationError{Field: "experience", Message: fmt.Sprintf("unrecognized value %q", p.Experience)}
	}
	return nil
}

// canonical lowercases and strips spaces, hyphens and underscores so
// "Gain muscle", "gain_muscle" and "GainMuscle" all compare equal.
func canonical(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}

// ParseGender accepts common spellings of a gender value.
func ParseGender(s string) (Gender, error) {
	switch canonical(s) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	case "prefernottosay", "other", "unspecified":
		return GenderPreferNotToSay, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// ParseGoal accepts common spellings of a goal value.
func ParseGoal(s string) (Goal, error) {
	switch canonical(s) {
	case "loseweight", "weightloss", "fatloss":
		return GoalLoseWeight, nil
	case "gainmuscle", "buildmuscle", "hypertrophy":
		return GoalGainMuscle, nil
	case "gainstrength", "strength":
		return GoalGainStrength, nil
	case "maintainmuscle", "maintain", "maintenance":
		return GoalMaintainMuscle, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ParseExperience accepts common spellings of an experience level.
func ParseExperience(s string) (Experience, error) {
	switch canonical(s) {
	case "novice", "beginner":
		return ExperienceNovice, nil
	case "experienced", "intermediate":
		return ExperienceExperienced, nil
	case "advanced", "expert":
		return ExperienceAdvanced, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// Normalize returns a copy of the profile with enum fields replaced by
// their canonical spellings. Call after decoding external input so the
// generator's table lookups see canonical values.
func (p UserProfile) Normalize() (UserProfile, error) {
	g, err := ParseGender(string(p.Gender))
	if err != nil {
		return p, &ValidationError{Field: "gender", Message: err.Error()}
	}
	goal, err := ParseGoal(string(p.Goal))
	if err != nil {
		return p, &ValidationError{Field: "goal", Message: err.Error()}
	}
	exp, err := ParseExperience(string(p.Experience))
	if err != nil {
		return p, &ValidationError{Field: "experience", Message: err.Error()}
	}
	p.Gender = g
	p.Goal = goal
	p.Experience = exp
	return p, nil
}
