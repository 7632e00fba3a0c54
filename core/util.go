package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ComposeName joins non-empty name parts with single spaces.
func ComposeName(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = CleanString(p); p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " ")
}
