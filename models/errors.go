package models

import (
	"fmt"
	"strings"
)

// ValidationError describes input that failed an enum-membership or
// required-field check. Allowed is empty for required-field failures.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("invalid %s %q: valid values are %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
