package jobsearch

import "strings"

type countryRule struct {
	substrings []string
	code       string
}

// Rule order is significant: the first matching rule wins.
var countryRules = []countryRule{
	{substrings: []string{"peru", "trujillo", "lima"}, code: "pe"},
	{substrings: []string{"mexico", "cdmx"}, code: "mx"},
	{substrings: []string{"spain", "madrid", "barcelona"}, code: "es"},
}

// InferCountry maps a free-text location to the provider's country code using
// case-insensitive substring matching. Absent or unmatched locations fall back
// to "us".
func InferCountry(location string) string {
	loc := strings.ToLower(location)
	for _, rule := range countryRules {
		for _, substr := range rule.substrings {
			if strings.Contains(loc, substr) {
				return rule.code
			}
		}
	}
	return "us"
}
