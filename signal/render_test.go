package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-phasor/internal/testutil"
)

func TestRenderMatchesReference(t *testing.T) {
	r := NewRenderer(WithSampleRate(48000))
	got := r.Render(New(1.0, 1000.0, 0.3), 0, 64)
	want := testutil.ReferenceCosine(1000, 48000, 1.0, 0.3, 64)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestRenderZeroLength(t *testing.T) {
	r := NewRenderer()
	if got := r.Render(New(1.0, 1.0, 0.0), 0, 0); got != nil {
		t.Fatalf("Render(n=0) = %v, want nil", got)
	}
}

func TestRendererDefaults(t *testing.T) {
	if got := NewRenderer().SampleRate(); got != 48000 {
		t.Fatalf("SampleRate() = %v, want 48000", got)
	}
	// Non-positive rates are ignored, not applied.
	if got := NewRenderer(WithSampleRate(-1)).SampleRate(); got != 48000 {
		t.Fatalf("SampleRate() = %v, want 48000", got)
	}
}

func TestMixEqualsSumOfRenders(t *testing.T) {
	r := NewRenderer(WithSampleRate(1000))
	a := New(2.0, 50.0, 0.0)
	b := New(0.5, 120.0, -0.7)

	dst := make([]float64, 128)
	r.Mix(dst, 0, a, b)

	ra := r.Render(a, 0, 128)
	rb := r.Render(b, 0, 128)
	want := make([]float64, 128)
	for i := range want {
		want[i] = ra[i] + rb[i]
	}

	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)
}

func TestMixOverwritesDst(t *testing.T) {
	r := NewRenderer()
	dst := testutil.DC(7, 16)
	r.Mix(dst, 0)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %v, want 0", i, v)
		}
	}
}

func TestMixReusesScratch(t *testing.T) {
	r := NewRenderer(WithSampleRate(100))
	s := New(1.0, 10.0, 0.0)

	dst := make([]float64, 32)
	r.Mix(dst, 0, s)
	first := make([]float64, 32)
	copy(first, dst)

	r.Mix(dst, 0, s)
	testutil.RequireSliceNearlyEqual(t, dst, first, 0)
}

func TestPhasorPartsAndMagnitudes(t *testing.T) {
	sinusoids := []Sinusoid[float64]{
		New(2.0, 1.0, 0.0),
		New(3.0, 1.0, math.Pi),
		New(5.0, 1.0, math.Atan2(4, 3)),
	}

	re, im := PhasorParts(sinusoids)
	if len(re) != 3 || len(im) != 3 {
		t.Fatalf("lengths = %d, %d, want 3, 3", len(re), len(im))
	}
	testutil.RequireNear(t, re[0], 2, 1e-12)
	testutil.RequireNear(t, im[0], 0, 1e-12)
	testutil.RequireNear(t, re[2], 3, 1e-12)
	testutil.RequireNear(t, im[2], 4, 1e-12)

	mags := make([]float64, 3)
	Magnitudes(mags, re, im)
	testutil.RequireSliceNearlyEqual(t, mags, []float64{2, 3, 5}, 1e-12)
}
