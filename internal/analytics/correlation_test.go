package analytics

import (
	"math"
	"testing"
)

func TestCorrelation_LengthMismatch(t *testing.T) {
	if _, err := Correlation([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestCorrelation_PerfectPositive(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 20, 30, 40, 50}
	got, err := Correlation(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("correlation = %v, want 1", got)
	}
}

func TestCorrelation_PerfectNegative(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{8, 6, 4, 2}
	got, err := Correlation(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got+1) > 1e-9 {
		t.Errorf("correlation = %v, want -1", got)
	}
}

func TestCorrelation_ZeroVarianceIsZero(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"constant x", []float64{5, 5, 5}, []float64{1, 2, 3}},
		{"constant y", []float64{1, 2, 3}, []float64{7, 7, 7}},
		{"both constant", []float64{5, 5}, []float64{7, 7}},
		{"empty", nil, nil},
	}

	for _, test := range tests {
		got, err := Correlation(test.x, test.y)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
		}
		if got != 0 {
			t.Errorf("%s: correlation = %v, want exactly 0", test.name, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s: correlation must never be NaN/Inf", test.name)
		}
	}
}

func TestCorrelation_WithinBounds(t *testing.T) {
	x := []float64{55, 62, 48, 71, 66, 59, 80, 44}
	y := []float64{70, 72, 68, 75, 74, 71, 78, 66}
	got, err := Correlation(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < -1 || got > 1 {
		t.Errorf("correlation = %v, out of [-1, 1]", got)
	}
	if got <= 0 {
		t.Errorf("correlation = %v, expected positive for co-moving series", got)
	}
}
