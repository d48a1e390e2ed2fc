package validator

import (
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug accepts lower-case letters and digits joined by single hyphens.
func ValidSlug(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != "" && slugRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid slug (lowercase letters, numbers, and hyphens only)"},
	}
}
