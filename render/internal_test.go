package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/soypat/equimesh"
	"github.com/soypat/equimesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestArgmin(t *testing.T) {
	for _, test := range []struct {
		w    []float64
		want int
	}{
		{w: []float64{1}, want: 0},
		{w: []float64{3, 2, 1}, want: 2},
		{w: []float64{1, 1 + 1e-9, 2}, want: 0},
		// Near ties keep the earliest index.
		{w: []float64{1 + 1e-9, 1, 2}, want: 0},
		{w: []float64{2, 1, 1 + 1e-9}, want: 1},
	} {
		if got := argmin(test.w); got != test.want {
			t.Errorf("argmin(%v) = %d, want %d", test.w, got, test.want)
		}
	}
}

func TestFrontSplice(t *testing.T) {
	vert := func(x float64) equimesh.Vertex { return equimesh.Vertex{R: r3.Vec{X: x}} }
	xs := func(p *front) []float64 {
		out := make([]float64, len(p.v))
		for i, v := range p.v {
			out[i] = v.R.X
		}
		return out
	}
	p := &front{v: []equimesh.Vertex{vert(0), vert(1), vert(2), vert(3)}}
	if p.prev(0) != 3 || p.next(3) != 0 || p.prev(2) != 1 || p.next(1) != 2 {
		t.Fatal("circular neighbor indices broken")
	}
	p.splice(1, []equimesh.Vertex{vert(10), vert(11)})
	want := []float64{0, 10, 11, 2, 3}
	for i, x := range xs(p) {
		if x != want[i] {
			t.Fatalf("after grow splice got %v, want %v", xs(p), want)
		}
	}
	p.splice(0, nil)
	want = []float64{10, 11, 2, 3}
	for i, x := range xs(p) {
		if x != want[i] {
			t.Fatalf("after shrink splice got %v, want %v", xs(p), want)
		}
	}
	for p.len() > 0 {
		p.splice(p.len()-1, nil)
	}
	if p.len() != 0 {
		t.Fatal("front did not empty")
	}
}

// Each wedge of n triangles replaces the pivot with n-1 arc vertices, so
// the front length changes by n-2 per advance.
func TestAdvanceBookkeeping(t *testing.T) {
	f, err := equimesh.New("Sphere", 1)
	if err != nil {
		t.Fatal(err)
	}
	m := NewMarchingTriangulator(f, 0.3, 0)
	m.seed()
	m.seeded = true
	if m.front.len() != 6 {
		t.Fatalf("seed ring has %d vertices, want 6", m.front.len())
	}
	if m.unwritten.Len() != 6 {
		t.Fatalf("seed emitted %d triangles, want 6", m.unwritten.Len())
	}
	var dst [maxWedgeTriangles]Triangle3
	total := m.unwritten.Len()
	for i := 0; i < 50 && !m.done; i++ {
		before := m.front.len()
		n := m.advance(dst[:])
		total += n
		if n > maxWedgeTriangles {
			t.Fatalf("wedge emitted %d triangles, above the %d bound", n, maxWedgeTriangles)
		}
		if m.done {
			break
		}
		if got := m.front.len(); got != before+n-2 {
			t.Fatalf("front length %d after a %d-triangle wedge, want %d", got, n, before+n-2)
		}
	}
	if total != m.emitted+6 {
		t.Errorf("accounted for %d triangles, emitted %d plus 6 seed", total, m.emitted)
	}
}

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-5
	f, err := equimesh.New("Sphere", 1)
	if err != nil {
		t.Fatal(err)
	}
	input, err := RenderAll(NewMarchingTriangulator(f, 0.2, 0))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = WriteSTL(&b, input)
	if err != nil {
		t.Fatal(err)
	}
	output, err := readBinarySTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect.V {
			if !d3.EqualWithin(got.V[i].R, expect.V[i].R, tol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i].R, expect.V[i].R)
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}
