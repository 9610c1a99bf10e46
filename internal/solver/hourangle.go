package solver

import (
	"errors"
	"math"
)

// HourAngleFunc evaluates an hour angle, in degrees, at Julian Date jd.
type HourAngleFunc func(jd float64) (float64, error)

// DefaultTolerance is the convergence tolerance in days (~9ms).
const DefaultTolerance = 1e-7

// DefaultMaxIterations bounds RefineHourAngle. In practice it converges in
// two or three steps.
const DefaultMaxIterations = 50

// ErrNoConvergence is returned when the refinement does not settle within
// the iteration limit.
var ErrNoConvergence = errors.New("hour angle refinement did not converge")

// RefineHourAngle progressively corrects a candidate Julian Date until the
// observed hour angle there matches target(jd).
//
// Each step moves the candidate by (target - observed)/360 days, i.e. one
// full turn of hour angle per day. Iteration stops once the step falls below
// tol. Errors from either function are returned unchanged.
func RefineHourAngle(estimate float64, target, observed HourAngleFunc, tol float64, maxIter int) (float64, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter < 1 {
		maxIter = DefaultMaxIterations
	}

	jd := estimate
	for i := 0; i < maxIter; i++ {
		want, err := target(jd)
		if err != nil {
			return 0, err
		}
		got, err := observed(jd)
		if err != nil {
			return 0, err
		}

		delta := (want - got) / 360
		if math.IsNaN(delta) {
			return 0, ErrNoConvergence
		}
		if math.Abs(delta) <= tol {
			return jd, nil
		}
		jd += delta
	}

	return 0, ErrNoConvergence
}
