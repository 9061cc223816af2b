package scalar

import (
	"math"
	"testing"
)

func TestTrigForwarding(t *testing.T) {
	if got := Sin(math.Pi / 2); math.Abs(got-1) > 1e-15 {
		t.Fatalf("Sin(π/2) = %v, want 1", got)
	}
	if got := Cos(0.0); got != 1 {
		t.Fatalf("Cos(0) = %v, want 1", got)
	}
	if got := Tan(0.0); got != 0 {
		t.Fatalf("Tan(0) = %v, want 0", got)
	}
	if got := Asin(1.0); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Fatalf("Asin(1) = %v, want π/2", got)
	}
	if got := Acos(1.0); got != 0 {
		t.Fatalf("Acos(1) = %v, want 0", got)
	}
}

func TestAtan2Quadrants(t *testing.T) {
	cases := []struct {
		y, x, want float64
	}{
		{0, 1, 0},
		{1, 0, math.Pi / 2},
		{0, -1, math.Pi},
		{-1, 0, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := Atan2(c.y, c.x); got != c.want {
			t.Fatalf("Atan2(%v, %v) = %v, want %v", c.y, c.x, got, c.want)
		}
	}
}

func TestAtan2Float32(t *testing.T) {
	var y, x float32 = 1, 1
	got := Atan2(y, x)
	if diff := math.Abs(float64(got) - math.Pi/4); diff > 1e-6 {
		t.Fatalf("Atan2(1, 1) = %v, want π/4", got)
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(25.0); got != 5 {
		t.Fatalf("Sqrt(25) = %v, want 5", got)
	}
	var f float32 = 9
	if got := Sqrt(f); got != 3 {
		t.Fatalf("Sqrt(9) = %v, want 3", got)
	}
}

func TestMod(t *testing.T) {
	if got := Mod(2.75, 1.0); got != 0.75 {
		t.Fatalf("Mod(2.75, 1) = %v, want 0.75", got)
	}
	if got := Mod(-1.25, 1.0); got != -0.25 {
		t.Fatalf("Mod(-1.25, 1) = %v, want -0.25", got)
	}
}

func TestPowIntInteger(t *testing.T) {
	if got := PowInt(2, 10); got != 1024 {
		t.Fatalf("PowInt(2, 10) = %d, want 1024", got)
	}
	if got := PowInt(-3, 3); got != -27 {
		t.Fatalf("PowInt(-3, 3) = %d, want -27", got)
	}
	if got := PowInt(7, 0); got != 1 {
		t.Fatalf("PowInt(7, 0) = %d, want 1", got)
	}
	// Negative exponents truncate toward zero for integers.
	if got := PowInt(2, -1); got != 0 {
		t.Fatalf("PowInt(2, -1) = %d, want 0", got)
	}
}

func TestPowIntFloat(t *testing.T) {
	if got := PowInt(2.0, -2); got != 0.25 {
		t.Fatalf("PowInt(2, -2) = %v, want 0.25", got)
	}
	if got := PowInt(1.5, 2); got != 2.25 {
		t.Fatalf("PowInt(1.5, 2) = %v, want 2.25", got)
	}
}

func TestPowIntUnsigned(t *testing.T) {
	var x uint8 = 3
	if got := PowInt(x, 4); got != 81 {
		t.Fatalf("PowInt(3, 4) = %d, want 81", got)
	}
}

func TestRecip(t *testing.T) {
	if got := Recip(0.5); got != 2 {
		t.Fatalf("Recip(0.5) = %v, want 2", got)
	}
	if got := Recip(0.0); !math.IsInf(got, 1) {
		t.Fatalf("Recip(0) = %v, want +Inf", got)
	}
}

func TestConstants(t *testing.T) {
	if got := Pi[float64](); got != math.Pi {
		t.Fatalf("Pi = %v, want %v", got, math.Pi)
	}
	if got := TwoPi[float64](); got != 2*math.Pi {
		t.Fatalf("TwoPi = %v, want %v", got, 2*math.Pi)
	}
	if got := HalfPi[float64](); got != math.Pi/2 {
		t.Fatalf("HalfPi = %v, want %v", got, math.Pi/2)
	}
	if got := TwoPi[float32](); got != float32(2*math.Pi) {
		t.Fatalf("TwoPi[float32] = %v, want %v", got, float32(2*math.Pi))
	}
}
