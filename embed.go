package planforge

import "embed"

// SeedFS holds the bundled starter catalog used to seed an empty
// database on first boot.
//
//go:embed seed/exercises.json
var SeedFS embed.FS

// SeedPath is the catalog file inside SeedFS.
const SeedPath = "seed/exercises.json"
