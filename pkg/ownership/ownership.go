// Package ownership decides whether a principal may mutate a record it
// claims to own. Identifiers are compared as case-insensitive opaque tokens.
package ownership

import "strings"

// MinIDLength rejects truncated or empty identifiers before they can match
// anything; legitimate ids are long opaque tokens.
const MinIDLength = 10

// Normalize returns the canonical form of an identifier and whether the
// identifier is usable for an ownership decision at all.
func Normalize(id string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	if len(normalized) < MinIDLength {
		return normalized, false
	}
	return normalized, true
}

// ValidID reports whether the identifier survives normalization.
func ValidID(id string) bool {
	_, ok := Normalize(id)
	return ok
}

// IsOwner reports whether actorID and ownerID identify the same principal.
// Any invalid id denies; there are no side effects, callers audit denials.
func IsOwner(actorID, ownerID string) bool {
	actor, ok := Normalize(actorID)
	if !ok {
		return false
	}
	owner, ok := Normalize(ownerID)
	if !ok {
		return false
	}
	return actor == owner
}
