// Package catalog defines the exercise-database entry the generator
// resolves template names against. Entries come from Postgres, the
// embedded seed file, or an import directory; field names follow the
// upstream exercise-database JSON export.
package catalog

// Exercise is a single catalog entry.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	GIFURL           string   `json:"gifUrl,omitempty"`
}
