package util

import (
	"fmt"
	"strconv"
)

// ParseID converts a route-supplied identifier to uint. Non-numeric input
// is rejected rather than coerced to zero.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
