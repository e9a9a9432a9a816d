package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// typed passwords from memory once they have been checked.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsBlank reports whether s is empty once surrounding whitespace is removed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
