//go:build unit || e2e

package testutil

// Field sets key to value in a payload map. A nil value deletes the key,
// which models an omitted request field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
