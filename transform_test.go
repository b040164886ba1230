package zbuf

import (
	"math"
	"testing"
)

func TestPixelRoundTrip(t *testing.T) {
	for _, scale := range []int{1, 2, 3, 7, 50, 256, 1000} {
		for p := -2 * scale; p <= 4*scale; p++ {
			if got := ToPixel(ToObject(p, scale), scale); got != p {
				t.Fatalf("scale %d: pixel %d maps back to %d", scale, p, got)
			}
		}
	}
}

func TestToPixelRounding(t *testing.T) {
	cases := []struct {
		c     float64
		scale int
		want  int
	}{
		{-0.5, 2, 1},
		{0.5, 2, 3},
		{-0.75, 2, 1}, // 0.5 rounds up
		{-1.25, 2, 0}, // -0.5 rounds up to zero
		{-1.75, 2, -1},
		{0.1, 10, 11},
		{-1, 4, 0},
		{1, 4, 8},
	}
	for _, tc := range cases {
		if got := ToPixel(tc.c, tc.scale); got != tc.want {
			t.Errorf("ToPixel(%g, %d) = %d, want %d", tc.c, tc.scale, got, tc.want)
		}
	}
}

func TestPixelMatrix(t *testing.T) {
	for _, scale := range []int{1, 4, 50} {
		m := PixelMatrix(scale)
		for _, c := range []float64{-1, -0.5, 0, 0.3, 1} {
			x := m[0]*c + m[2]*c + m[4]
			want := (1 + c) * float64(scale)
			if math.Abs(x-want) > 1e-9 {
				t.Errorf("scale %d: %g maps to %g, want %g", scale, c, x, want)
			}
		}
	}
}
