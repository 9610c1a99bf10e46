package angle

import "math"

func Sin(r Radians) float64 {
	return math.Sin(float64(r))
}

func Cos(r Radians) float64 {
	return math.Cos(float64(r))
}

func Tan(r Radians) float64 {
	return math.Tan(float64(r))
}

// Asin returns the arcsine of x. It fails with a *DomainError when x is
// outside [-1, 1] instead of returning NaN.
func Asin(x float64) (Radians, error) {
	if !inUnitRange(x) {
		return 0, &DomainError{Func: "asin", Arg: x}
	}
	return Radians(math.Asin(x)), nil
}

// Acos returns the arccosine of x. It fails with a *DomainError when x is
// outside [-1, 1] instead of returning NaN.
func Acos(x float64) (Radians, error) {
	if !inUnitRange(x) {
		return 0, &DomainError{Func: "acos", Arg: x}
	}
	return Radians(math.Acos(x)), nil
}

// Atan2 returns the arc tangent of y/x using the signs of both to pick the
// quadrant. The result lies in [-π, π].
func Atan2(y, x float64) Radians {
	return Radians(math.Atan2(y, x))
}

// inUnitRange is false for NaN as well.
func inUnitRange(x float64) bool {
	return x >= -1 && x <= 1
}
