package utils

import (
	"strconv"
	"strings"
)

// ParseAmount converts a form value to a float64. Blank or unparsable
// input yields 0 so that a sloppy submission never fails a whole entry.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
