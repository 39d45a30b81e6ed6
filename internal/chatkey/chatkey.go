// Package chatkey derives canonical conversation identifiers.
//
// A conversation between two users is keyed by their names sorted
// lexicographically and joined with a fixed separator, so that both
// participants resolve the same key regardless of argument order. Named
// group chats live in a disjoint namespace: their key is a fixed prefix
// plus an externally assigned group identifier, which keeps two groups
// with identical membership distinct.
//
// All functions are pure and allocation-light; keys are plain strings
// suitable for use as database index values.
package chatkey

import "strings"

const (
	// pairSeparator joins the two sorted participant names of a direct chat.
	pairSeparator = "|"
	// groupPrefix namespaces group keys away from direct-chat keys.
	// Participant names are letter-only, so neither the separator nor the
	// prefix can occur inside a name and the namespaces cannot collide.
	groupPrefix = "group:"
)

// Direct returns the canonical key for a two-party conversation.
// Direct(a, b) == Direct(b, a) for all a, b.
func Direct(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + pairSeparator + b
}

// Group returns the canonical key for a named group chat. The id is assigned
// by the caller (not derived from membership) and is used verbatim.
func Group(id string) string {
	return groupPrefix + id
}

// IsGroup reports whether key belongs to the group namespace.
func IsGroup(key string) bool {
	return strings.HasPrefix(key, groupPrefix)
}

// Participants splits a direct-chat key back into its two sorted names.
// It returns ok=false for group keys or malformed input.
func Participants(key string) (a, b string, ok bool) {
	if IsGroup(key) {
		return "", "", false
	}
	a, b, ok = strings.Cut(key, pairSeparator)
	if !ok || a == "" || b == "" || strings.Contains(b, pairSeparator) {
		return "", "", false
	}
	return a, b, true
}
