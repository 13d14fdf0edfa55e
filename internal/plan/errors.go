package plan

import "fmt"

// ValidationError reports a malformed user profile. Generation aborts;
// the input must be corrected by the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Message)
}

// ConfigurationError reports a policy or template table missing an
// entry for a validated input combination. This is a programming error
// in the static tables, not a user error.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "plan configuration: " + e.Detail
}
