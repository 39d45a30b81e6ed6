// Package utils holds small helpers shared across layers, with no domain
// knowledge of their own.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or not a
// valid integer. The HTTP layer uses it for optional numeric query
// parameters such as the history limit, where a missing or garbled value
// should fall back to the handler's default instead of erroring.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
