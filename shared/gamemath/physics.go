package gamemath

import "math"

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// ApplyDrag scales speedX by the ground or air drag factor and clamps the
// result to maxSpeed.
func ApplyDrag(speedX float64, onGround bool, groundDrag, airDrag, maxSpeed float64) float64 {
	if onGround {
		speedX *= groundDrag
	} else {
		speedX *= airDrag
	}
	return ClampSpeed(speedX, maxSpeed)
}

// RoundVec snaps a position to whole pixels.
func RoundVec(v Vec) Vec {
	return Vec{math.Round(v.X), math.Round(v.Y)}
}

// JumpVelocity evaluates the jump easing curve. Launch is negative (upward);
// the curve starts at launch and eases to zero at maxTime.
func JumpVelocity(launch, elapsed, maxTime, power float64) float64 {
	return launch * (1.0 - math.Pow(elapsed/maxTime, power))
}

// Bounce returns the vertical offset of a bobbing pickup. Pickups with the
// same x share a phase.
func Bounce(totalSeconds, x, rate, sync, height float64) float64 {
	t := totalSeconds*rate + x*sync
	return math.Sin(t) * height
}
