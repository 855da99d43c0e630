package utils

import (
	"regexp"
	"strings"
)

// Plate numbers are stored uppercased without surrounding whitespace.
// Accepts 4-12 alphanumerics with optional single separators, e.g.
// "KA-01-AB-1234" or "MH12DE1433".
var plateRegex = regexp.MustCompile(`^[A-Z0-9]+(?:[- ][A-Z0-9]+)*$`)

// NormalizePlate uppercases and trims a vehicle plate number
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidatePlate reports whether a vehicle plate number is acceptable
func ValidatePlate(plate string) bool {
	normalized := NormalizePlate(plate)
	stripped := strings.NewReplacer("-", "", " ", "").Replace(normalized)
	if len(stripped) < 4 || len(stripped) > 12 {
		return false
	}
	return plateRegex.MatchString(normalized)
}
