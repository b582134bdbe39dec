package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDistance(t *testing.T) {
	a := Vector{0, 0, 0}
	b := Vector{3, 4, 0}
	if got := Distance(a, b); !almostEqual(got, 5) {
		t.Errorf("Distance(%v, %v) = %v, want 5", a, b, got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}
	z := Cross(x, y)
	if !almostEqual(z[2], 1) || !almostEqual(z[0], 0) || !almostEqual(z[1], 0) {
		t.Errorf("Cross(x, y) = %v, want (0,0,1)", z)
	}
}

func TestAngleRange(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{-1, 0, 0}
	if got := Angle(a, b); !almostEqual(got, 180) {
		t.Errorf("Angle(a, -a) = %v, want 180", got)
	}
	if got := Angle(a, a); !almostEqual(got, 0) {
		t.Errorf("Angle(a, a) = %v, want 0", got)
	}
}

func TestDirectionalAngleFolds(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{-1, 0, 0}
	if got := DirectionalAngle(a, b); !almostEqual(got, 0) {
		t.Errorf("DirectionalAngle(a, -a) = %v, want 0", got)
	}

	c := Vector{0, 1, 0}
	if got := DirectionalAngle(a, c); !almostEqual(got, 90) {
		t.Errorf("DirectionalAngle(a, perp) = %v, want 90", got)
	}
}

func TestCentroidWeighted(t *testing.T) {
	positions := []Vector{{0, 0, 0}, {2, 0, 0}}
	masses := []float64{1, 1}
	c := Centroid(positions, masses)
	if !almostEqual(c[0], 1) {
		t.Errorf("Centroid midpoint x = %v, want 1", c[0])
	}

	masses2 := []float64{1, 3}
	c2 := Centroid(positions, masses2)
	if !almostEqual(c2[0], 1.5) {
		t.Errorf("Centroid weighted x = %v, want 1.5", c2[0])
	}
}
