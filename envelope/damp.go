package envelope

import (
	"math"
)

// dampScale sets how fast the curve approaches zero relative to the time
// constant: residual is (1+k)e^-k ≈ 1% of initial at elapsed == timeConstant
const dampScale = 6.64

// Damp returns a smooth monotonic decay of initial toward 0 as elapsed grows,
// critically-damped-spring shaped: zero slope at elapsed 0, no overshoot,
// ~1% residual at elapsed == timeConstant.
// elapsed < 0 returns initial; timeConstant <= 0 decays instantly.
func Damp(initial, timeConstant, elapsed float64) float64 {
	if elapsed <= 0 {
		return initial
	}
	if timeConstant <= 0 {
		return 0
	}
	x := dampScale * elapsed / timeConstant
	return initial * (1 + x) * math.Exp(-x)
}
