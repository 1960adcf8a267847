//go:build unit || e2e

package testutil

import "strings"

// a helper function for dynamically modifying map fields in tests.
// Dotted keys ("reservationDetails.bookerEmail") reach into nested objects.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				return
			}
			m = next
		}
		last := parts[len(parts)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
