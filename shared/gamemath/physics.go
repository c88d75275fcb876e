package gamemath

import "math"

// ApplyGravity returns vy after one tick of gravity. Reversed gravity pulls
// toward negative y. A positive maxFall caps the speed along the pull
// direction; zero leaves it uncapped.
func ApplyGravity(vy, gravity float64, reversed bool, maxFall float64) float64 {
	if reversed {
		vy -= gravity
		if maxFall > 0 && vy < -maxFall {
			vy = -maxFall
		}
		return vy
	}
	vy += gravity
	if maxFall > 0 && vy > maxFall {
		vy = maxFall
	}
	return vy
}

// WrapDegrees folds an angle into (-360, 360) keeping its sign.
func WrapDegrees(deg float64) float64 {
	return math.Mod(deg, 360)
}

// Approach moves current toward target by at most step and reports whether
// the target was reached.
func Approach(current, target, step float64) (float64, bool) {
	step = math.Abs(step)
	if current < target {
		current += step
		if current >= target {
			return target, true
		}
		return current, false
	}
	if current > target {
		current -= step
		if current <= target {
			return target, true
		}
		return current, false
	}
	return current, true
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
