package sunsector

import (
	"math"
	"time"

	"github.com/thurmanmarka/sunsector/angle"
	"github.com/thurmanmarka/sunsector/internal/timeutil"
)

// Observation is the Sun as seen from a location at an instant.
//
// An Observation is immutable: At and AtJulianDate return new values and
// every accessor is a pure function of (location, instant). Nothing is
// cached, so an Observation may be shared freely between goroutines.
type Observation struct {
	loc  Location
	when time.Time
}

// Equatorial holds the Sun's equatorial coordinates in degrees.
type Equatorial struct {
	Declination    angle.Degrees
	RightAscension angle.Degrees // (-180, 180]
}

// Horizontal holds the Sun's horizontal coordinates in degrees.
type Horizontal struct {
	Azimuth   angle.Degrees // [0, 360), clockwise from north
	Elevation angle.Degrees // above the horizon, no refraction
}

// New returns the Observation of the Sun from (lat, lon) at t.
func New(lat, lon angle.Degrees, t time.Time) (Observation, error) {
	return Location{Latitude: lat, Longitude: lon}.At(t)
}

// Now returns the Observation of the Sun from (lat, lon) at the current time.
func Now(lat, lon angle.Degrees) (Observation, error) {
	return New(lat, lon, time.Now())
}

// At returns the Observation of the Sun from l at t.
func (l Location) At(t time.Time) (Observation, error) {
	if err := l.Validate(); err != nil {
		return Observation{}, err
	}
	return Observation{loc: l, when: t.UTC()}, nil
}

// At returns an Observation from the same location at t.
func (o Observation) At(t time.Time) Observation {
	return Observation{loc: o.loc, when: t.UTC()}
}

// AtJulianDate returns an Observation from the same location at the instant
// with Julian Date jd.
func (o Observation) AtJulianDate(jd float64) Observation {
	return o.At(timeutil.TimeFromJulianDate(jd))
}

// Location returns the observer's location.
func (o Observation) Location() Location { return o.loc }

// Time returns the instant of the observation, in UTC.
func (o Observation) Time() time.Time { return o.when }

// JulianDate returns the (UT) Julian Date of the observation.
func (o Observation) JulianDate() float64 {
	return timeutil.JulianDate(o.when)
}

// EphemerisDay returns the number of Terrestrial Time days since J2000.0.
func (o Observation) EphemerisDay() float64 {
	return timeutil.DaysSinceJ2000(o.when)
}

// MeanAnomaly returns the Sun's mean anomaly in [0, 360).
func (o Observation) MeanAnomaly() angle.Degrees {
	const (
		epochMeanAnomaly  = 357.5291
		meanAngularMotion = 0.98560028 // degrees per day
	)
	return angle.Degrees(epochMeanAnomaly + meanAngularMotion*o.EphemerisDay()).Normalize()
}

// EquationOfCenter returns the difference between true and mean anomaly.
func (o Observation) EquationOfCenter() angle.Degrees {
	m := angle.Rad(o.MeanAnomaly())
	// coefficients are in degrees, so the sum is too
	c := 1.9148*angle.Sin(m) + 0.02*angle.Sin(2*m) + 0.0003*angle.Sin(3*m)
	return angle.Degrees(c)
}

// TrueAnomaly returns the Sun's true anomaly in [0, 360).
func (o Observation) TrueAnomaly() angle.Degrees {
	return (o.MeanAnomaly() + o.EquationOfCenter()).Normalize()
}

// EclipticLongitude returns the Sun's geocentric ecliptic longitude in
// [0, 360).
func (o Observation) EclipticLongitude() angle.Degrees {
	const argumentOfPerihelion = 102.9373
	// +180 turns the heliocentric longitude of the Earth into the
	// geocentric longitude of the Sun.
	return (argumentOfPerihelion + o.TrueAnomaly() + 180).Normalize()
}

// Sun returns the Sun's declination and right ascension.
func (o Observation) Sun() Equatorial {
	eps := angle.Rad(AxialTilt)
	l := angle.Rad(o.EclipticLongitude())
	dec := asinUnit(angle.Sin(eps) * angle.Sin(l))
	ra := angle.Atan2(angle.Sin(l)*angle.Cos(eps), angle.Cos(l))
	return Equatorial{
		Declination:    angle.Deg(dec),
		RightAscension: angle.Deg(ra),
	}
}

// Declination returns the Sun's declination.
func (o Observation) Declination() angle.Degrees {
	return o.Sun().Declination
}

// RightAscension returns the Sun's right ascension in (-180, 180].
func (o Observation) RightAscension() angle.Degrees {
	return o.Sun().RightAscension
}

// SiderealTime returns the local sidereal time in [0, 360).
func (o Observation) SiderealTime() angle.Degrees {
	const (
		siderealTimeAtEpoch    = 280.147
		siderealRotationPerDay = 360.9856235
	)
	st := siderealTimeAtEpoch + siderealRotationPerDay*o.EphemerisDay() + float64(o.loc.Longitude)
	return angle.Degrees(st).Normalize()
}

// HourAngle returns the Sun's hour angle in [-180, 180): negative before
// local solar noon, positive after it.
func (o Observation) HourAngle() angle.Degrees {
	return (o.SiderealTime() - o.RightAscension()).Signed()
}

// Horizontal returns the Sun's azimuth and elevation.
func (o Observation) Horizontal() Horizontal {
	h := angle.Rad(o.HourAngle())
	lat := angle.Rad(o.loc.Latitude)
	dec := angle.Rad(o.Declination())

	// The formula measures azimuth westward from south; +180 puts north at 0.
	az := angle.Deg(angle.Atan2(angle.Sin(h), angle.Cos(h)*angle.Sin(lat)-angle.Tan(dec)*angle.Cos(lat)))
	el := asinUnit(angle.Sin(lat)*angle.Sin(dec) + angle.Cos(lat)*angle.Cos(dec)*angle.Cos(h))

	return Horizontal{
		Azimuth:   (180 + az).Normalize(),
		Elevation: angle.Deg(el),
	}
}

// Azimuth returns the Sun's azimuth in [0, 360), clockwise from north.
func (o Observation) Azimuth() angle.Degrees {
	return o.Horizontal().Azimuth
}

// Elevation returns the Sun's geometric elevation above the horizon.
func (o Observation) Elevation() angle.Degrees {
	return o.Horizontal().Elevation
}

// EquationOfTime returns apparent minus mean solar time, in days.
func (o Observation) EquationOfTime() float64 {
	const (
		j1 = 0.0053472
		j2 = -0.006875
	)
	m := angle.Rad(o.MeanAnomaly())
	l := angle.Rad(o.EclipticLongitude())
	return j1*angle.Sin(m) + j2*angle.Sin(2*l)
}

// HourAngleAtAltitude returns the hour angle, in [0, 180], at which the
// Sun's center is at altitude h0 on this date. It returns a
// *NoRiseSetError when the Sun stays above (PolarDay) or below
// (PolarNight) h0 all day.
func (o Observation) HourAngleAtAltitude(h0 angle.Degrees) (angle.Degrees, error) {
	lat := angle.Rad(o.loc.Latitude)
	dec := angle.Rad(o.Declination())
	x := (angle.Sin(angle.Rad(h0)) - angle.Sin(lat)*angle.Sin(dec)) / (angle.Cos(lat) * angle.Cos(dec))

	ht, err := angle.Acos(x)
	if err != nil {
		cond := PolarNight
		if x < -1 {
			cond = PolarDay
		}
		return 0, &NoRiseSetError{Altitude: h0, Condition: cond, Err: err}
	}
	return angle.Deg(ht), nil
}

// HorizonHourAngle returns the hour angle of sunrise and sunset, i.e. the
// hour angle at StandardAltitude.
func (o Observation) HorizonHourAngle() (angle.Degrees, error) {
	return o.HourAngleAtAltitude(StandardAltitude)
}

// asinUnit is asin for arguments that are bounded by construction;
// rounding can push them a hair past ±1.
func asinUnit(x float64) angle.Radians {
	r, err := angle.Asin(math.Max(-1, math.Min(1, x)))
	if err != nil {
		return angle.Radians(math.NaN())
	}
	return r
}
