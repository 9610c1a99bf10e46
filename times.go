package sunsector

import (
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/sunsector/angle"
	"github.com/thurmanmarka/sunsector/internal/solver"
	"github.com/thurmanmarka/sunsector/internal/timeutil"
)

// Times holds the instants of sunrise, solar noon and sunset, in UTC.
type Times struct {
	Rise time.Time
	Noon time.Time
	Set  time.Time
}

// DayLength returns the time between Rise and Set.
func (t Times) DayLength() time.Duration {
	return t.Set.Sub(t.Rise)
}

// SolarTransit returns the Observation at the solar noon nearest to o.
//
// This is the direct estimate: local mean noon shifted by the equation of
// time. See RefinedSolarTransit for the iterated version.
func (o Observation) SolarTransit() Observation {
	ed := o.EphemerisDay()
	localTime := ed + float64(o.loc.Longitude)/360
	nearest := math.Round(localTime)
	estimate := timeutil.Y2KJulianDate + ed + (nearest - localTime) + o.EquationOfTime()
	return o.AtJulianDate(estimate)
}

// Times returns sunrise, solar noon and sunset around the solar noon
// nearest to o. It returns a *NoRiseSetError (matching ErrNoRiseNoSet)
// during polar day or polar night.
func (o Observation) Times() (Times, error) {
	return o.TimesAtAltitude(StandardAltitude)
}

// TimesAtAltitude is like Times, except that Rise and Set are the instants
// at which the Sun's center crosses altitude h0.
func (o Observation) TimesAtAltitude(h0 angle.Degrees) (Times, error) {
	noon := o.SolarTransit()
	ht, err := noon.HourAngleAtAltitude(h0)
	if err != nil {
		return Times{}, err
	}
	jd := noon.JulianDate()
	return Times{
		Rise: o.AtJulianDate(jd - float64(ht)/360).Time(),
		Noon: noon.Time(),
		Set:  o.AtJulianDate(jd + float64(ht)/360).Time(),
	}, nil
}

// Rise returns the time of sunrise; see Times.
func (o Observation) Rise() (time.Time, error) {
	t, err := o.Times()
	return t.Rise, err
}

// Noon returns the time of solar noon. Unlike rise and set it always
// exists.
func (o Observation) Noon() time.Time {
	return o.SolarTransit().Time()
}

// Set returns the time of sunset; see Times.
func (o Observation) Set() (time.Time, error) {
	t, err := o.Times()
	return t.Set, err
}

// -----------------------------
// Iterated transit and rise/set
// -----------------------------

func zeroHourAngle(float64) (float64, error) { return 0, nil }

func (o Observation) hourAngleAt(jd float64) (float64, error) {
	return float64(o.AtJulianDate(jd).HourAngle()), nil
}

// RefinedSolarTransit starts from SolarTransit and steps the instant until
// the hour angle is zero. The result can differ from the direct estimate
// by a minute or more.
func (o Observation) RefinedSolarTransit() (Observation, error) {
	jd, err := solver.RefineHourAngle(o.SolarTransit().JulianDate(), zeroHourAngle, o.hourAngleAt,
		solver.DefaultTolerance, solver.DefaultMaxIterations)
	if err != nil {
		return Observation{}, fmt.Errorf("refining solar transit: %w", err)
	}
	return o.AtJulianDate(jd), nil
}

// RefinedTimes is like Times, but refines noon, rise and set so that the
// hour angle at each matches 0 and ∓HorizonHourAngle evaluated at that
// same instant.
func (o Observation) RefinedTimes() (Times, error) {
	noon, err := o.RefinedSolarTransit()
	if err != nil {
		return Times{}, err
	}
	ht, err := noon.HorizonHourAngle()
	if err != nil {
		return Times{}, err
	}

	horizon := func(sign float64) solver.HourAngleFunc {
		return func(jd float64) (float64, error) {
			h, err := o.AtJulianDate(jd).HorizonHourAngle()
			return sign * float64(h), err
		}
	}

	jd := noon.JulianDate()
	rise, err := solver.RefineHourAngle(jd-float64(ht)/360, horizon(-1), o.hourAngleAt,
		solver.DefaultTolerance, solver.DefaultMaxIterations)
	if err != nil {
		return Times{}, fmt.Errorf("refining sunrise: %w", err)
	}
	set, err := solver.RefineHourAngle(jd+float64(ht)/360, horizon(1), o.hourAngleAt,
		solver.DefaultTolerance, solver.DefaultMaxIterations)
	if err != nil {
		return Times{}, fmt.Errorf("refining sunset: %w", err)
	}

	return Times{
		Rise: timeutil.TimeFromJulianDate(rise),
		Noon: noon.Time(),
		Set:  timeutil.TimeFromJulianDate(set),
	}, nil
}

// -----------------------------
// Calendar-date helpers
// -----------------------------

// localNoon returns 12:00 on date's calendar day in date's time zone. The
// Times around it belong to that calendar day for any sensible zone.
func localNoon(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, date.Location())
}

// SlideIntoSunset returns sunrise, solar noon and sunset at loc for the
// calendar date of date, taken in date's time zone. The returned times are
// converted to that zone too.
func SlideIntoSunset(loc Location, date time.Time) (Times, error) {
	o, err := loc.At(localNoon(date))
	if err != nil {
		return Times{}, err
	}
	t, err := o.Times()
	if err != nil {
		return Times{}, err
	}
	tz := date.Location()
	return Times{Rise: t.Rise.In(tz), Noon: t.Noon.In(tz), Set: t.Set.In(tz)}, nil
}

// DaylightHours returns the time between sunrise and sunset, in hours, at
// loc on the calendar date of date.
//
// If the sun does not rise or set on the given date it returns 0 and an
// error matching ErrNoRiseNoSet; use errors.As with *NoRiseSetError to tell
// polar day from polar night.
func DaylightHours(loc Location, date time.Time) (float64, error) {
	t, err := SlideIntoSunset(loc, date)
	if err != nil {
		return 0, err
	}
	return t.DayLength().Hours(), nil
}
