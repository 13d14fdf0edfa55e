package resolve

// aliases maps canonical template exercise names to known catalog-name
// variants. Variants are tried in order, so the most common catalog
// spelling should come first. Keys and variants are compared after
// normalization, so case and hyphens don't matter.
var aliases = map[string][]string{
	// Chest
	"Barbell Bench Press": {"barbell bench press", "bench press", "barbell bench press (flat)", "flat bench press"},
	"Incline Dumbbell Press": {"dumbbell incline bench press", "incline dumbbell press", "incline dumbbell bench press"},
	"Dumbbell Bench Press": {"dumbbell bench press", "dumbbell press", "flat dumbbell press"},
	"Chest Fly":           {"dumbbell fly", "dumbbell flyes", "pec fly", "chest fly", "flat dumbbell fly"},
	"Cable Fly":           {"cable crossover", "cable fly", "cable chest fly"},
	"Push Up":             {"push-up", "push up", "pushup", "press up"},
	"Machine Chest Press": {"lever chest press", "machine chest press", "seated chest press"},
	"Dip":                 {"chest dip", "dip", "parallel bar dip", "triceps dip"},

	// Back
	"Deadlift":          {"barbell deadlift", "deadlift", "conventional deadlift"},
	"Romanian Deadlift": {"barbell romanian deadlift", "romanian deadlift", "stiff leg deadlift", "stiff-legged deadlift"},
	"Pull Up":           {"pull-up", "pull up", "pullup", "wide grip pull up"},
	"Chin Up":           {"chin-up", "chin up", "chinup"},
	"Lat Pulldown":      {"cable lat pulldown", "lat pulldown", "wide grip lat pulldown", "cable pulldown"},
	"Barbell Row":       {"barbell bent over row", "barbell row", "bent over row", "bent-over row"},
	"Dumbbell Row":      {"dumbbell bent over row", "dumbbell row", "one arm dumbbell row", "single arm row"},
	"Seated Cable Row":  {"cable seated row", "seated cable row", "seated row", "cable row"},
	"Face Pull":         {"cable face pull", "face pull", "rope face pull"},
	"Back Extension":    {"hyperextension", "back extension", "45 degree hyperextension"},

	// Shoulders
	"Overhead Press":          {"barbell standing military press", "barbell overhead press", "overhead press", "military press", "standing barbell press"},
	"Dumbbell Shoulder Press": {"dumbbell seated shoulder press", "dumbbell shoulder press", "seated dumbbell press", "dumbbell overhead press"},
	"Lateral Raise":           {"dumbbell lateral raise", "lateral raise", "side lateral raise", "dumbbell side raise"},
	"Rear Delt Fly":           {"dumbbell rear delt fly", "rear delt fly", "reverse fly", "bent over rear delt fly"},
	"Front Raise":             {"dumbbell front raise", "front raise"},
	"Arnold Press":            {"dumbbell arnold press", "arnold press"},

	// Arms
	"Barbell Curl":      {"barbell curl", "barbell biceps curl", "standing barbell curl"},
	"Dumbbell Curl":     {"dumbbell curl", "dumbbell biceps curl", "standing dumbbell curl", "alternating dumbbell curl"},
	"Hammer Curl":       {"dumbbell hammer curl", "hammer curl"},
	"Preacher Curl":     {"ez barbell preacher curl", "preacher curl", "ez bar preacher curl"},
	"Tricep Pushdown":   {"cable pushdown", "triceps pushdown", "cable triceps pushdown", "rope pushdown"},
	"Tricep Extension":  {"dumbbell standing triceps extension", "overhead triceps extension", "triceps extension", "dumbbell triceps extension"},
	"Skull Crusher":     {"ez barbell lying triceps extension", "lying triceps extension", "skull crusher", "ez bar skull crusher"},
	"Close Grip Bench Press": {"barbell close grip bench press", "close grip bench press", "close-grip bench press"},

	// Legs
	"Barbell Squat":         {"barbell full squat", "barbell squat", "back squat", "squat"},
	"Front Squat":           {"barbell front squat", "front squat"},
	"Goblet Squat":          {"dumbbell goblet squat", "goblet squat", "kettlebell goblet squat"},
	"Leg Press":             {"sled 45 degrees leg press", "leg press", "machine leg press", "45 degree leg press"},
	"Leg Extension":         {"lever leg extension", "leg extension", "machine leg extension"},
	"Leg Curl":              {"lever lying leg curl", "lying leg curl", "leg curl", "seated leg curl", "hamstring curl"},
	"Walking Lunge":         {"dumbbell walking lunge", "walking lunge", "bodyweight walking lunge", "lunge"},
	"Bulgarian Split Squat": {"dumbbell bulgarian split squat", "bulgarian split squat", "split squat", "rear foot elevated split squat"},
	"Hip Thrust":            {"barbell hip thrust", "hip thrust", "weighted hip thrust"},
	"Glute Bridge":          {"glute bridge", "bodyweight glute bridge", "hip bridge"},
	"Calf Raise":            {"standing calf raise", "calf raise", "machine standing calf raise", "seated calf raise"},
	"Step Up":               {"dumbbell step up", "step up", "step-up", "bodyweight step up"},

	// Core
	"Plank":         {"plank", "front plank", "forearm plank"},
	"Crunch":        {"crunch", "ab crunch", "crunch floor"},
	"Russian Twist": {"russian twist", "seated russian twist"},
	"Leg Raise":     {"lying leg raise", "leg raise", "hanging leg raise", "flat bench lying leg raise"},
	"Dead Bug":      {"dead bug", "dead bugs"},
	"Mountain Climber": {"mountain climber", "mountain climbers", "cross body mountain climber"},

	// Bodyweight fallbacks
	"Bodyweight Squat":  {"bodyweight squat", "air squat", "squat (bodyweight)"},
	"Inverted Row":      {"inverted row", "bodyweight row", "australian pull up"},
	"Pike Push Up":      {"pike push up", "pike push-up", "pike pushup"},
	"Superman":          {"superman", "superman raise", "back extension floor"},
}

// AliasVariants returns the configured catalog-name variants for a
// canonical template name, or nil when no alias entry exists.
func AliasVariants(templateName string) []string {
	return aliases[templateName]
}
