// Package angle provides unit-tagged angle types and trigonometric helpers.
//
// Degrees and Radians are distinct named types so that a value in one unit
// cannot be passed where the other is expected without an explicit
// conversion. Every forward trigonometric function takes Radians and every
// inverse function returns Radians; values meant for people are Degrees.
package angle

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Degrees is an angle measured in degrees.
type Degrees float64

// Radians is an angle measured in radians.
type Radians float64

// ErrDomain is matched (via errors.Is) by every DomainError.
var ErrDomain = errors.New("argument outside the domain of the inverse trigonometric function")

// DomainError reports an inverse trigonometric call with an argument
// outside [-1, 1].
type DomainError struct {
	Func string  // "asin" or "acos"
	Arg  float64 // the offending argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): argument outside [-1, 1]", e.Func, e.Arg)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Deg converts radians to degrees.
func Deg(r Radians) Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Rad converts degrees to radians.
func Rad(d Degrees) Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Rad(d)
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Deg(r)
}

// Normalize maps d into [0, 360).
func (d Degrees) Normalize() Degrees {
	return Degrees(Mod(float64(d), 360))
}

// Signed maps d into [-180, 180), i.e. the signed angle from zero rather
// than the angle since the previous full turn.
func (d Degrees) Signed() Degrees {
	n := d.Normalize()
	if n >= 180 {
		n -= 360
	}
	return n
}

func (d Degrees) String() string {
	return fmt.Sprintf("%.4f°", float64(d))
}

// Angle returns d as a unit.Angle.
func (d Degrees) Angle() unit.Angle {
	return unit.AngleFromDeg(float64(d))
}

// Angle returns r as a unit.Angle.
func (r Radians) Angle() unit.Angle {
	return unit.Angle(r)
}

// FromAngle converts a unit.Angle, which is held in radians, to Radians.
func FromAngle(a unit.Angle) Radians {
	return Radians(a.Rad())
}

// Mod returns v modulo n with the sign of n, so that for positive n the
// result always lies in [0, n). math.Mod alone keeps the sign of v, which
// would yield negative angles for instants before a reference epoch.
func Mod(v, n float64) float64 {
	return math.Mod(math.Mod(v, n)+n, n)
}
