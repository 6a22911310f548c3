package common

const (
	BaseWidth  = 800
	BaseHeight = 600
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Truncate converts to int, dropping the fractional part toward zero.
func Truncate(v float64) int {
	return int(v)
}
