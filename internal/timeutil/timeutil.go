package timeutil

import (
	"math"
	"time"
)

const (
	// MsPerDay is the number of milliseconds in a day.
	MsPerDay = 8.64e7

	// UnixEpochJulianDate is the Julian Date of 1970-01-01T00:00:00Z.
	UnixEpochJulianDate = 2440587.5

	// Y2KJulianDate is the Julian Date of the J2000.0 epoch,
	// 2000-01-01T12:00:00 TT.
	Y2KJulianDate = 2451545.0

	// TerrestrialTimeOffset is the fixed TT - UT correction, in days.
	//
	// A single constant is good enough for modern dates; this is not a
	// leap-second model.
	TerrestrialTimeOffset = 69184 / MsPerDay
)

// -----------------------------
// Instants on the Julian Date axis
// -----------------------------

// UnixMillis returns t as (fractional) milliseconds since the Unix epoch.
// Seconds and nanoseconds are kept apart so instants outside the int64
// nanosecond range (years 1678 to 2262) still convert.
func UnixMillis(t time.Time) float64 {
	return float64(t.Unix())*1e3 + float64(t.Nanosecond())/1e6
}

// JulianDate returns the Julian Date of the instant t. The time zone of t
// does not matter.
func JulianDate(t time.Time) float64 {
	return UnixMillis(t)/MsPerDay + UnixEpochJulianDate
}

// TimeFromJulianDate returns the UTC instant with Julian Date jd, rounded
// to the nearest nanosecond the float64 can resolve.
func TimeFromJulianDate(jd float64) time.Time {
	secs := (jd - UnixEpochJulianDate) * MsPerDay / 1e3
	sec := math.Floor(secs)
	nsec := math.Round((secs - sec) * 1e9)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// EphemerisDay returns the number of Terrestrial Time days since J2000.0
// for the (UT based) Julian Date jd.
func EphemerisDay(jd float64) float64 {
	return jd - Y2KJulianDate + TerrestrialTimeOffset
}

// DaysSinceJ2000 returns the ephemeris day of the instant t.
func DaysSinceJ2000(t time.Time) float64 {
	return EphemerisDay(JulianDate(t))
}
