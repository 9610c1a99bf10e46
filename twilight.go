package sunsector

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/sunsector/angle"
)

// TwilightKind identifies the type of twilight based on the Sun's altitude
// below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil TwilightKind = iota

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

// Altitude returns the altitude that bounds this kind of twilight.
func (k TwilightKind) Altitude() (angle.Degrees, error) {
	switch k {
	case TwilightCivil:
		return -6, nil
	case TwilightNautical:
		return -12, nil
	case TwilightAstronomical:
		return -18, nil
	default:
		return 0, fmt.Errorf("unknown TwilightKind: %d", int(k))
	}
}

func (k TwilightKind) String() string {
	switch k {
	case TwilightCivil:
		return "civil"
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("TwilightKind(%d)", int(k))
	}
}

// Twilight returns dawn (Rise) and dusk (Set) of the given kind around the
// solar noon nearest to o. Noon is solar noon.
//
// For example, TwilightCivil returns civil dawn and civil dusk, where the
// Sun's center crosses -6 degrees.
func (o Observation) Twilight(kind TwilightKind) (Times, error) {
	alt, err := kind.Altitude()
	if err != nil {
		return Times{}, err
	}
	return o.TimesAtAltitude(alt)
}

// PhaseWindow is the span during which the Sun's center moves between two
// altitudes.
type PhaseWindow struct {
	Start time.Time
	End   time.Time
}

// DaylightPhases pairs the morning (rising) and evening (setting) windows
// of one altitude band.
type DaylightPhases struct {
	Morning PhaseWindow
	Evening PhaseWindow

	// A window is missing when the Sun never reaches the upper altitude
	// or never drops below the lower one on that day.
	HasMorning bool
	HasEvening bool
}

// GoldenHour returns the golden hour windows around the solar noon nearest
// to o: the Sun's center between -4° and +6°.
//
// If neither window exists ErrNoRiseNoSet is returned.
func (o Observation) GoldenHour() (DaylightPhases, error) {
	return o.phases(-4, 6)
}

// BlueHour returns the blue hour windows around the solar noon nearest to
// o: the Sun's center between -6° and -4°.
//
// If neither window exists ErrNoRiseNoSet is returned.
func (o Observation) BlueHour() (DaylightPhases, error) {
	return o.phases(-6, -4)
}

// phases builds the morning window (climbing from low to high) and the
// evening window (descending from high to low).
func (o Observation) phases(low, high angle.Degrees) (DaylightPhases, error) {
	// Both crossings are needed for either window.
	lo, err := o.TimesAtAltitude(low)
	if err != nil {
		return DaylightPhases{}, err
	}
	hi, err := o.TimesAtAltitude(high)
	if err != nil {
		return DaylightPhases{}, err
	}

	var p DaylightPhases
	if hi.Rise.After(lo.Rise) {
		p.Morning = PhaseWindow{Start: lo.Rise, End: hi.Rise}
		p.HasMorning = true
	}
	if lo.Set.After(hi.Set) {
		p.Evening = PhaseWindow{Start: hi.Set, End: lo.Set}
		p.HasEvening = true
	}
	if !p.HasMorning && !p.HasEvening {
		return DaylightPhases{}, ErrNoRiseNoSet
	}
	return p, nil
}
