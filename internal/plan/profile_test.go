package plan

import "testing"

// TestParseGoal covers the accepted spellings and the reject path.
func TestParseGoal(t *testing.T) {
	cases := []struct {
		in   string
		want Goal
	}{
		{"lose_weight", GoalLoseWeight},
		{"Lose weight", GoalLoseWeight},
		{"fat-loss", GoalLoseWeight},
		{"gain_muscle", GoalGainMuscle},
		{"Gain muscle", GoalGainMuscle},
		{"hypertrophy", GoalGainMuscle},
		{"GainStrength", GoalGainStrength},
		{"strength", GoalGainStrength},
		{"maintain_muscle", GoalMaintainMuscle},
		{"maintenance", GoalMaintainMuscle},
	}
	for _, c := range cases {
		got, err := ParseGoal(c.in)
		if err != nil {
			t.Errorf("ParseGoal(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseGoal(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	if _, err := ParseGoal("get shredded"); err == nil {
		t.Error("expected error for unknown goal")
	}
}

// TestParseGender covers spellings and the neutral mappings.
func TestParseGender(t *testing.T) {
	cases := []struct {
		in   string
		want Gender
	}{
		{"male", GenderMale},
		{"Male", GenderMale},
		{"m", GenderMale},
		{"Female", GenderFemale},
		{"f", GenderFemale},
		{"prefer_not_to_say", GenderPreferNotToSay},
		{"Prefer not to say", GenderPreferNotToSay},
		{"other", GenderPreferNotToSay},
	}
	for _, c := range cases {
		got, err := ParseGender(c.in)
		if err != nil {
			t.Errorf("ParseGender(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseGender(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	if _, err := ParseGender("attack helicopter"); err == nil {
		t.Error("expected error for unknown gender")
	}
}

// TestParseExperience covers spellings including the common
// beginner/intermediate synonyms.
func TestParseExperience(t *testing.T) {
	cases := []struct {
		in   string
		want Experience
	}{
		{"novice", ExperienceNovice},
		{"Beginner", ExperienceNovice},
		{"experienced", ExperienceExperienced},
		{"intermediate", ExperienceExperienced},
		{"Advanced", ExperienceAdvanced},
		{"expert", ExperienceAdvanced},
	}
	for _, c := range cases {
		got, err := ParseExperience(c.in)
		if err != nil {
			t.Errorf("ParseExperience(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseExperience(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	if _, err := ParseExperience("elite"); err == nil {
		t.Error("expected error for unknown experience")
	}
}

// TestProfileNormalize verifies mixed-case user input is rewritten to
// the canonical enum spellings without touching numeric fields.
func TestProfileNormalize(t *testing.T) {
	p := UserProfile{Age: 25, Gender: "Male", Goal: "Gain muscle", Experience: "Beginner", DaysPerWeek: 3}
	got, err := p.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := UserProfile{Age: 25, Gender: GenderMale, Goal: GoalGainMuscle, Experience: ExperienceNovice, DaysPerWeek: 3}
	if got != want {
		t.Errorf("Normalize = %+v, want %+v", got, want)
	}
}

// TestProfileValidate verifies the field order of validation errors so
// API error messages stay stable.
func TestProfileValidate(t *testing.T) {
	valid := UserProfile{Age: 30, Gender: GenderFemale, Goal: GoalLoseWeight, Experience: ExperienceNovice, DaysPerWeek: 4}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	cases := []struct {
		name      string
		mutate    func(*UserProfile)
		wantField string
	}{
		{"age", func(p *UserProfile) { p.Age = 0 }, "age"},
		{"age before days", func(p *UserProfile) { p.Age = -1; p.DaysPerWeek = 9 }, "age"},
		{"days low", func(p *UserProfile) { p.DaysPerWeek = 0 }, "daysPerWeek"},
		{"days high", func(p *UserProfile) { p.DaysPerWeek = 7 }, "daysPerWeek"},
		{"gender", func(p *UserProfile) { p.Gender = "x" }, "gender"},
		{"goal", func(p *UserProfile) { p.Goal = "x" }, "goal"},
		{"experience", func(p *UserProfile) { p.Experience = "x" }, "experience"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := valid
			c.mutate(&p)
			err := p.Validate()
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != c.wantField {
				t.Errorf("field = %q, want %q", verr.Field, c.wantField)
			}
		})
	}
}
