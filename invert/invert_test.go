package invert

import (
	"math"
	"testing"
)

func TestOddsNCFisherRoundTrip(t *testing.T) {
	m1, m2, n := 30, 70, 20
	for _, wantOdds := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		mean, err := forwardMean(m1, m2, n, wantOdds, 0.01, Fisher)
		if err != nil {
			t.Fatalf("forwardMean: %v", err)
		}
		gotOdds, err := OddsNC(mean, m1, m2, n, 0.01, Fisher)
		if err != nil {
			t.Fatalf("OddsNC: %v", err)
		}
		if math.Abs(gotOdds-wantOdds) > 0.05*wantOdds {
			t.Errorf("odds=%g mean=%g: round trip got %g", wantOdds, mean, gotOdds)
		}
	}
}

func TestOddsNCWalleniusRoundTrip(t *testing.T) {
	m1, m2, n := 30, 70, 20
	for _, wantOdds := range []float64{0.2, 0.5, 1, 3, 8} {
		mean, err := forwardMean(m1, m2, n, wantOdds, 0.1, Wallenius)
		if err != nil {
			t.Fatalf("forwardMean: %v", err)
		}
		gotOdds, err := OddsNC(mean, m1, m2, n, 0.1, Wallenius)
		if err != nil {
			t.Fatalf("OddsNC: %v", err)
		}
		if math.Abs(gotOdds-wantOdds) > 0.1*wantOdds+0.1 {
			t.Errorf("odds=%g mean=%g: round trip got %g", wantOdds, mean, gotOdds)
		}
	}
}

func TestOddsNCRejectsOutOfRangeMean(t *testing.T) {
	if _, err := OddsNC(1000, 30, 70, 20, 0.1, Fisher); err == nil {
		t.Fatal("expected ErrMeanOutOfRange for an unreachable mean")
	}
}

func TestNumNCFisherRoundTrip(t *testing.T) {
	total, n, odds := 100, 20, 2.5
	wantM1 := 35.0
	mean, err := forwardMean(int(wantM1), total-int(wantM1), n, odds, 0.01, Fisher)
	if err != nil {
		t.Fatalf("forwardMean: %v", err)
	}

	gotM1, gotM2, err := NumNC(mean, n, total, odds, 0.01, Fisher)
	if err != nil {
		t.Fatalf("NumNC: %v", err)
	}
	if math.Abs(gotM1-wantM1) > 2 {
		t.Errorf("m1: want ~%g got %g", wantM1, gotM1)
	}
	if gotM1+gotM2 != float64(total) {
		t.Errorf("m1+m2 = %g, want %d", gotM1+gotM2, total)
	}
}

func TestNumNCRejectsInvalidDraws(t *testing.T) {
	if _, _, err := NumNC(5, 50, 40, 1, 0.1, Fisher); err == nil {
		t.Fatal("expected error when n > total")
	}
}

func TestEffectiveAccuracyFloor(t *testing.T) {
	if got := effectiveAccuracy(0.001); got != minAccuracy {
		t.Errorf("effectiveAccuracy(0.001) = %g, want floor %g", got, minAccuracy)
	}
	if got := effectiveAccuracy(0.5); got != 0.5 {
		t.Errorf("effectiveAccuracy(0.5) = %g, want 0.5 unchanged", got)
	}
}
