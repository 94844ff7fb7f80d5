package util

import "strings"

// ParseCommaSeparated flattens values that may each hold a comma separated
// list, trimming spaces and dropping empty parts. Returns nil for no input.
func ParseCommaSeparated(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, raw := range values {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
