package allowance

import "math"

// CeilCents rounds a monetary amount up to the nearest cent. Every amount
// this engine produces goes through it; the compliance rule is always round
// up, never to-nearest. The epsilon keeps values that are exact cents after
// float arithmetic (e.g. 45*0.5) from being pushed a cent higher.
func CeilCents(v float64) float64 {
	return math.Ceil(v*100-1e-9) / 100
}
