package validation

import (
	"regexp"
	"strings"
)

var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2,3}$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidCountryCode reports whether s looks like an ISO 3166 alpha-2/alpha-3 code.
func IsValidCountryCode(s string) bool {
	return countryCodeRegex.MatchString(s)
}

// NormalizeCities trims every name and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func NormalizeCities(cities []string) []string {
	seen := make(map[string]struct{}, len(cities))
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
