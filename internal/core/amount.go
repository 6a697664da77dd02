package core

import "strconv"

// FormatAmount renders an amount with the shortest decimal representation
// that round-trips, so 5000 stays "5000" and 350.45 stays "350.45".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
