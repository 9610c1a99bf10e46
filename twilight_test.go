package sunsector

import (
	"errors"
	"testing"
	"time"
)

// helper: absolute difference in minutes
func diffMinutes(a, b time.Time) float64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

func TestTwilight_Phoenix_2025_11_28(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatalf("failed to load Phoenix tz: %v", err)
	}

	phoenix := Location{
		Latitude:  33.4484,
		Longitude: -112.0740,
	}

	date := time.Date(2025, time.November, 28, 0, 0, 0, 0, loc)
	o, err := phoenix.At(localNoon(date))
	if err != nil {
		t.Fatal(err)
	}

	// Reference values taken from an online twilight calculator for
	// Phoenix, AZ on 2025-11-28 (local time, America/Phoenix):
	//
	//   Civil dawn:        06:45
	//   Sunrise:           07:11
	//   Sunset:            17:21
	//   Civil dusk:        17:47
	//   Nautical dawn:     06:14
	//   Nautical dusk:     18:18
	//   Astronomical dawn: 05:44
	//   Astronomical dusk: 18:48
	cases := []struct {
		kind       TwilightKind
		expectDawn string // HH:MM local
		expectDusk string // HH:MM local
	}{
		{TwilightCivil, "06:45", "17:47"},
		{TwilightNautical, "06:14", "18:18"},
		{TwilightAstronomical, "05:44", "18:48"},
	}

	sun, err := o.Times()
	if err != nil {
		t.Fatalf("Times: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			refDawn, err := time.ParseInLocation("15:04", tc.expectDawn, loc)
			if err != nil {
				t.Fatalf("parse ref dawn %q: %v", tc.expectDawn, err)
			}
			refDusk, err := time.ParseInLocation("15:04", tc.expectDusk, loc)
			if err != nil {
				t.Fatalf("parse ref dusk %q: %v", tc.expectDusk, err)
			}
			// Attach the same calendar date
			refDawn = time.Date(date.Year(), date.Month(), date.Day(),
				refDawn.Hour(), refDawn.Minute(), 0, 0, loc)
			refDusk = time.Date(date.Year(), date.Month(), date.Day(),
				refDusk.Hour(), refDusk.Minute(), 0, 0, loc)

			tw, err := o.Twilight(tc.kind)
			if err != nil {
				t.Fatalf("Twilight(%v) error: %v", tc.kind, err)
			}

			dawnErr := diffMinutes(tw.Rise, refDawn)
			duskErr := diffMinutes(tw.Set, refDusk)

			t.Logf("[%v twilight / Phoenix 2025-11-28]", tc.kind)
			t.Logf("  Dawn: expected %s, got %s (err=%.2f min)",
				refDawn.Format(time.RFC3339), tw.Rise.In(loc).Format(time.RFC3339), dawnErr)
			t.Logf("  Dusk: expected %s, got %s (err=%.2f min)",
				refDusk.Format(time.RFC3339), tw.Set.In(loc).Format(time.RFC3339), duskErr)

			const maxAllowedErr = 5.0 // minutes
			if dawnErr > maxAllowedErr || duskErr > maxAllowedErr {
				t.Fatalf("%v twilight error too large (dawn=%.2f, dusk=%.2f minutes)",
					tc.kind, dawnErr, duskErr)
			}

			if !tw.Rise.Before(sun.Rise) || !tw.Set.After(sun.Set) {
				t.Errorf("%v twilight %v..%v does not enclose daylight %v..%v",
					tc.kind, tw.Rise, tw.Set, sun.Rise, sun.Set)
			}
			if !tw.Noon.Equal(sun.Noon) {
				t.Errorf("twilight noon %v, want %v", tw.Noon, sun.Noon)
			}
		})
	}

	if _, err := o.Twilight(TwilightKind(42)); err == nil {
		t.Errorf("expected error for unknown TwilightKind")
	}
}

func TestGoldenAndBlueHour(t *testing.T) {
	o, err := New(50.4501, 30.5234, time.Date(2022, time.August, 24, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	sun, err := o.Times()
	if err != nil {
		t.Fatal(err)
	}
	golden, err := o.GoldenHour()
	if err != nil {
		t.Fatalf("GoldenHour: %v", err)
	}
	blue, err := o.BlueHour()
	if err != nil {
		t.Fatalf("BlueHour: %v", err)
	}
	if !golden.HasMorning || !golden.HasEvening || !blue.HasMorning || !blue.HasEvening {
		t.Fatalf("missing windows: golden %+v blue %+v", golden, blue)
	}

	for _, w := range []struct {
		name string
		pw   PhaseWindow
	}{
		{"golden morning", golden.Morning},
		{"golden evening", golden.Evening},
		{"blue morning", blue.Morning},
		{"blue evening", blue.Evening},
	} {
		if !w.pw.End.After(w.pw.Start) {
			t.Errorf("%s: %v..%v is empty", w.name, w.pw.Start, w.pw.End)
		}
		if d := w.pw.End.Sub(w.pw.Start); d > 2*time.Hour {
			t.Errorf("%s lasts %v", w.name, d)
		}
	}

	// Blue hour hands over to golden hour at -4°, and sunrise falls
	// within the morning golden hour.
	if !blue.Morning.End.Equal(golden.Morning.Start) {
		t.Errorf("blue morning ends %v, golden starts %v", blue.Morning.End, golden.Morning.Start)
	}
	if !blue.Evening.Start.Equal(golden.Evening.End) {
		t.Errorf("golden evening ends %v, blue starts %v", golden.Evening.End, blue.Evening.Start)
	}
	if sun.Rise.Before(golden.Morning.Start) || sun.Rise.After(golden.Morning.End) {
		t.Errorf("sunrise %v outside golden hour %+v", sun.Rise, golden.Morning)
	}
	if sun.Set.Before(golden.Evening.Start) || sun.Set.After(golden.Evening.End) {
		t.Errorf("sunset %v outside golden hour %+v", sun.Set, golden.Evening)
	}
}

func TestGoldenHour_MidnightSun(t *testing.T) {
	tromso, err := New(69.6492, 18.9553, time.Date(2025, time.June, 21, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	_, err = tromso.GoldenHour()
	var nrs *NoRiseSetError
	if !errors.As(err, &nrs) || nrs.Condition != PolarDay {
		t.Errorf("GoldenHour: got %v, want polar day NoRiseSetError", err)
	}
	if !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("GoldenHour: %v does not match ErrNoRiseNoSet", err)
	}
}
