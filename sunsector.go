// Package sunsector computes the apparent position of the Sun and the
// times of sunrise, solar noon and sunset for an observer on Earth.
//
// It uses the closed-form approximations described at
// https://www.aa.quae.nl/en/reken/zonpositie.html: mean anomaly, equation
// of center, ecliptic longitude, sidereal time and hour angle. Results are
// good to a fraction of a degree and about a minute, which is plenty for
// deciding when it gets dark but is not an ephemeris.
//
// The central type is Observation: an immutable (location, instant) pair
// from which every intermediate quantity can be read.
//
//	o, err := sunsector.New(39.949444, -75.150278, time.Now())
//	...
//	fmt.Println(o.Azimuth(), o.Elevation())
//	times, err := o.Times()
//	if errors.Is(err, sunsector.ErrNoRiseNoSet) {
//		// polar day or polar night
//	}
package sunsector

import (
	"fmt"

	"cloudeng.io/errors"

	"github.com/thurmanmarka/sunsector/angle"
)

// StandardAltitude is the altitude of the Sun's center when its upper limb
// touches the horizon under standard refraction.
const StandardAltitude angle.Degrees = -0.83

// AxialTilt is the obliquity of the ecliptic used for equatorial
// coordinates.
const AxialTilt angle.Degrees = 23.4393

// Location is an observer's position on Earth.
type Location struct {
	Latitude  angle.Degrees // north positive, [-90, 90]
	Longitude angle.Degrees // east positive (west negative, e.g. -105 for 105°W), [-180, 180]
}

var (
	// ErrNoRiseNoSet is returned when the Sun does not cross the requested
	// altitude on that date at that location.
	ErrNoRiseNoSet = errors.New("sun does not rise or set on this date")

	// ErrInvalidLocation is matched by every InvalidLocationError.
	ErrInvalidLocation = errors.New("invalid location")
)

// InvalidLocationError reports a coordinate outside its valid range.
type InvalidLocationError struct {
	Field    string // "latitude" or "longitude"
	Value    angle.Degrees
	Min, Max angle.Degrees
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be within [%g, %g]", e.Field, e.Value, float64(e.Min), float64(e.Max))
}

func (e *InvalidLocationError) Is(target error) bool {
	return target == ErrInvalidLocation
}

// Validate checks that both coordinates are within range. When both are
// bad the returned error carries both.
func (l Location) Validate() error {
	errs := errors.M{}
	errs.Append(checkRange("latitude", l.Latitude, 90))
	errs.Append(checkRange("longitude", l.Longitude, 180))
	return errs.Err()
}

func checkRange(field string, v, limit angle.Degrees) error {
	// written so that NaN fails
	if v >= -limit && v <= limit {
		return nil
	}
	return &InvalidLocationError{Field: field, Value: v, Min: -limit, Max: limit}
}

// Condition says why the Sun never crosses an altitude on a given date.
type Condition int

const (
	// PolarDay means the Sun stays above the altitude all day.
	PolarDay Condition = iota
	// PolarNight means the Sun stays below the altitude all day.
	PolarNight
)

func (c Condition) String() string {
	switch c {
	case PolarDay:
		return "polar day"
	case PolarNight:
		return "polar night"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// NoRiseSetError is returned when the hour angle for an altitude crossing
// does not exist. It matches both ErrNoRiseNoSet and angle.ErrDomain.
type NoRiseSetError struct {
	Altitude  angle.Degrees
	Condition Condition
	Err       error // the underlying *angle.DomainError
}

func (e *NoRiseSetError) Error() string {
	return fmt.Sprintf("sun does not cross %v on this date (%v)", e.Altitude, e.Condition)
}

func (e *NoRiseSetError) Unwrap() []error {
	return []error{ErrNoRiseNoSet, e.Err}
}
