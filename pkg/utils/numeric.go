package utils

import (
	"strconv"
	"strings"
)

// ParseNumeric coerces a raw persistence value to a float64. Legacy
// tracking rows stored numerics as text, sometimes with whitespace or
// garbage; anything unparseable (including NaN/Inf) is treated as zero so
// downstream summaries stay numeric.
func ParseNumeric(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	// reject NaN and Inf: v != v catches NaN
	if v != v || v > 1e300 || v < -1e300 {
		return 0
	}
	return v
}
