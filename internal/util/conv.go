package util

import (
	"strconv"
)

// MustParseUint parses s as an unsigned id and returns 0 when it is not one.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseID parses a path id, rejecting zero.
func ParseID(s string) (uint, bool) {
	id := MustParseUint(s)
	return id, id > 0
}
