package zbuf

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"
)

func TestNewInvalidScale(t *testing.T) {
	for _, scale := range []int{0, -1, -100} {
		if _, err := New(scale); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("New(%d): got %v, want ErrInvalidScale", scale, err)
		}
	}

	z, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := z.Configure(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Configure(0): got %v", err)
	}
	if z.Scale() != 3 || z.Size() != 6 {
		t.Errorf("failed Configure changed the buffer: scale %d, size %d", z.Scale(), z.Size())
	}
}

// TestConfigureResize grows and shrinks the grid and checks that each
// pass only sees cells of the current size.
func TestConfigureResize(t *testing.T) {
	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	model := []*Square{NewSquare("s", Red)}
	z.Resolve(model)

	for _, scale := range []int{4, 1, 3, 2} {
		if err := z.Configure(scale); err != nil {
			t.Fatalf("Configure(%d): %v", scale, err)
		}
		if z.Scale() != scale || z.Size() != 2*scale {
			t.Fatalf("scale %d: got scale %d, size %d", scale, z.Scale(), z.Size())
		}
		if z.Len() != 0 {
			t.Errorf("scale %d: %d points left from the previous pass", scale, z.Len())
		}

		z.Resolve(model)

		// clipped closed pixel box of the unit square
		lo, hi := ToPixel(-0.5, scale), min(ToPixel(0.5, scale), 2*scale-1)
		n := hi - lo + 1
		if z.Len() != n*n {
			t.Errorf("scale %d: %d points, want %d", scale, z.Len(), n*n)
		}
		for y := range z.Size() {
			for x := range z.Size() {
				want := Sentinel
				if x >= lo && x <= hi && y >= lo && y <= hi {
					want = DefaultDepth
				}
				if got := z.DepthAt(x, y); got != want {
					t.Errorf("scale %d, cell (%d, %d): depth %g, want %g", scale, x, y, got, want)
				}
			}
		}
	}
}

// TestSingleSquare checks the grid and output for one default square at
// scale 2.  The closed pixel box is [1, 3]×[1, 3].
func TestSingleSquare(t *testing.T) {
	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	red := NewSquare("Red Square", Red)
	z.Resolve([]*Square{red})

	if z.Size() != 4 {
		t.Fatalf("size = %d, want 4", z.Size())
	}
	for y := range 4 {
		for x := range 4 {
			want := Sentinel
			if x >= 1 && y >= 1 {
				want = 2
			}
			if got := z.DepthAt(x, y); got != want {
				t.Errorf("cell (%d, %d): depth %g, want %g", x, y, got, want)
			}
		}
	}

	if z.Len() != 9 {
		t.Fatalf("%d points, want 9", z.Len())
	}
	pos := z.Positions()
	seen := make(map[[2]int]bool)
	for i, c := range z.Colors() {
		if c != Red {
			t.Errorf("point %d has color %v", i, c)
		}
		p := [2]int{ToPixel(pos[2*i], 2), ToPixel(pos[2*i+1], 2)}
		if seen[p] {
			t.Errorf("point %v emitted twice", p)
		}
		seen[p] = true
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if !seen[[2]int{x, y}] {
				t.Errorf("cell (%d, %d) not emitted", x, y)
			}
		}
	}
}

func TestEmptyModel(t *testing.T) {
	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	z.Resolve([]*Square{NewSquare("s", Red)})
	z.Resolve(nil)

	if z.Len() != 0 || len(z.Positions()) != 0 {
		t.Errorf("empty model produced %d points", z.Len())
	}
	for y := range z.Size() {
		for x := range z.Size() {
			if d := z.DepthAt(x, y); d != Sentinel {
				t.Errorf("cell (%d, %d) holds %g after empty pass", x, y, d)
			}
		}
	}
}

func TestDepthAtOutside(t *testing.T) {
	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	z.Resolve([]*Square{NewSquare("s", Red)})
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if d := z.DepthAt(p[0], p[1]); d != Sentinel {
			t.Errorf("DepthAt%v = %g", p, d)
		}
	}
}

// TestOverlap checks that the nearer of two overlapping squares wins
// the shared cells, whichever is processed first.
func TestOverlap(t *testing.T) {
	newModel := func() (a, b *Square) {
		a = NewSquare("A", Red)
		_ = a.Translate(-0.5, -0.5, -1) // cells [0, 2]², depth 1
		b = NewSquare("B", Blue)
		_ = b.Translate(0, 0, 1) // cells [1, 3]², depth 3
		return a, b
	}

	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	a, b := newModel()
	z.Resolve([]*Square{a, b})
	abFinal := finalColors(z)
	abLen := z.Len()

	a, b = newModel()
	z.Resolve([]*Square{b, a})
	baFinal := finalColors(z)
	baLen := z.Len()

	for _, cell := range [][2]int{{1, 1}, {2, 2}, {1, 2}, {2, 1}} {
		if abFinal[cell] != Red || baFinal[cell] != Red {
			t.Errorf("cell %v: got %v and %v, want red", cell, abFinal[cell], baFinal[cell])
		}
		if d := z.DepthAt(cell[0], cell[1]); d != 1 {
			t.Errorf("cell %v: depth %g, want 1", cell, d)
		}
	}
	if !maps.Equal(abFinal, baFinal) {
		t.Error("final result depends on model order")
	}

	// A first: B skips the four shared cells.  B first: A overwrites them.
	if abLen != 9+5 || baLen != 9+9 {
		t.Errorf("got %d and %d points, want 14 and 18", abLen, baLen)
	}
}

// TestTie checks that a square at equal depth never overwrites an earlier
// occupant.
func TestTie(t *testing.T) {
	z, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	first := NewSquare("first", Red)
	second := NewSquare("second", Green)
	z.Resolve([]*Square{first, second})

	if z.Len() != 9 {
		t.Errorf("%d points, want 9", z.Len())
	}
	for _, c := range z.Colors() {
		if c != Red {
			t.Fatalf("second square wrote a cell with color %v", c)
		}
	}
}

// TestOrderIndependence resolves every permutation of the demo scene and
// compares the final cell colors.
func TestOrderIndependence(t *testing.T) {
	scene, err := DemoScene(10)
	if err != nil {
		t.Fatal(err)
	}
	model := scene.Model()

	z, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	z.Resolve(model)
	want := finalColors(z)
	wantDepth := depthGrid(z)

	for _, perm := range permutations(len(model)) {
		m := make([]*Square, len(model))
		for i, j := range perm {
			m[i] = model[j]
		}
		z.Resolve(m)
		if got := finalColors(z); !maps.Equal(got, want) {
			t.Errorf("permutation %v: final colors differ", perm)
		}
		if got := depthGrid(z); !slices.Equal(got, wantDepth) {
			t.Errorf("permutation %v: depth grid differs", perm)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	scene, err := DemoScene(20)
	if err != nil {
		t.Fatal(err)
	}
	z := scene.Buffer()

	scene.Resolve()
	pos := slices.Clone(z.Positions())
	col := slices.Clone(z.Colors())

	scene.Resolve()
	if !slices.Equal(pos, z.Positions()) || !slices.Equal(col, z.Colors()) {
		t.Error("second pass over an unchanged scene differs")
	}
}

// TestSentinelCellsNotEmitted checks that no point is emitted for a cell
// left at the sentinel value.
func TestSentinelCellsNotEmitted(t *testing.T) {
	scene, err := DemoScene(10)
	if err != nil {
		t.Fatal(err)
	}
	scene.Resolve()
	z := scene.Buffer()

	pos := z.Positions()
	for i := range z.Len() {
		x, y := ToPixel(pos[2*i], 10), ToPixel(pos[2*i+1], 10)
		if z.DepthAt(x, y) == Sentinel {
			t.Errorf("point %d at unwritten cell (%d, %d)", i, x, y)
		}
	}
	if n := len(finalColors(z)); n >= z.Size()*z.Size() {
		t.Errorf("all %d cells written, expected some to stay empty", n)
	}
}

func TestReportLines(t *testing.T) {
	scene, err := DemoScene(10)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		" [Red Square]    depth = 2.5",
		" [Blue Square]   depth = 2.0",
		" [Green Square]  depth = 1.5",
	}, "\n") + "\n"
	if got := scene.Report(); got != want {
		t.Errorf("report:\n%s\nwant:\n%s", got, want)
	}
}

// finalColors returns the visible color of every written cell.
func finalColors(z *ZBuffer) map[[2]int]RGBA {
	res := make(map[[2]int]RGBA)
	pos := z.Positions()
	for i, c := range z.Colors() {
		p := [2]int{ToPixel(pos[2*i], z.Scale()), ToPixel(pos[2*i+1], z.Scale())}
		res[p] = c
	}
	return res
}

func depthGrid(z *ZBuffer) []float64 {
	var res []float64
	for y := range z.Size() {
		for x := range z.Size() {
			res = append(res, z.DepthAt(x, y))
		}
	}
	return res
}

// permutations returns all orderings of 0, ..., n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var res [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			res = append(res, q)
		}
	}
	return res
}
