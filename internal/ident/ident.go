package ident

import "strings"

// Separator divides the source system prefix from the local identifier.
const Separator = "|"

// Parse splits a raw identifier into its source system and local id.
// The split happens at the first separator; everything after it belongs
// to the local id, further separators included. A token without a
// separator has an empty source and is returned whole as the local id.
// The empty string is a valid identifier (empty source, empty local id).
func Parse(raw string) (source, localID string) {
	if i := strings.Index(raw, Separator); i >= 0 {
		return raw[:i], raw[i+len(Separator):]
	}
	return "", raw
}

// Join re-serializes a (source, local id) pair. A pair with an empty
// source round-trips to the bare local id.
func Join(source, localID string) string {
	if source == "" {
		return localID
	}
	return source + Separator + localID
}
