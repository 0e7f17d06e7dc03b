package equimesh_test

import (
	"math"
	"testing"

	"github.com/soypat/equimesh"
	"github.com/soypat/equimesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectResidual(t *testing.T) {
	for _, test := range []struct {
		name   string
		params []float64
		start  r3.Vec
	}{
		{name: "Sphere", params: []float64{1}, start: r3.Vec{X: -2e-5}},
		{name: "Sphere", params: []float64{1}, start: r3.Vec{X: 0.5, Y: 0.2, Z: 0.1}},
		{name: "BinaryRoche", params: []float64{1, 0.3, 1, 3.9}, start: r3.Vec{X: -2e-5}},
		{name: "MisalignedBinaryRoche", params: []float64{1, 0.3, 1, 0.3, 0.5, 3.9}, start: r3.Vec{X: -2e-5}},
		{name: "RotateRoche", params: []float64{0.5, 1}, start: r3.Vec{X: -2e-5}},
		{name: "Torus", params: []float64{1, 0.3}, start: r3.Vec{X: -2e-5}},
		{name: "Heart", start: r3.Vec{X: 0.1, Z: 1.2}},
	} {
		f, err := equimesh.New(test.name, test.params...)
		if err != nil {
			t.Fatal(err)
		}
		v := equimesh.Project(test.start, f)
		if phi := math.Abs(f.At(v.R)); phi > 1e-6 {
			t.Errorf("%s projection from %v left residual Φ = %g", test.name, test.start, phi)
		}
		if n := r3.Norm(v.N); math.Abs(n-1) > 1e-12 {
			t.Errorf("%s projected normal has norm %g", test.name, n)
		}
	}
}

func TestVertexFrame(t *testing.T) {
	const tol = 1e-12
	f, err := equimesh.New("Sphere", 1)
	if err != nil {
		t.Fatal(err)
	}
	// Directions chosen to exercise both tangent construction branches.
	for _, dir := range []r3.Vec{
		{X: 1}, {Y: 1}, {Z: 1}, {Z: -1},
		{X: 0.1, Y: 0.2, Z: 0.97},
		{X: -0.7, Y: 0.6, Z: 0.3},
	} {
		v := equimesh.NewVertex(r3.Unit(dir), f)
		for name, u := range map[string]r3.Vec{"N": v.N, "T1": v.T1, "T2": v.T2} {
			if math.Abs(r3.Norm(u)-1) > tol {
				t.Errorf("dir %v: %s not unit length: %v", dir, name, u)
			}
		}
		if d := math.Abs(r3.Dot(v.N, v.T1)); d > tol {
			t.Errorf("dir %v: N·T1 = %g", dir, d)
		}
		if d := math.Abs(r3.Dot(v.N, v.T2)); d > tol {
			t.Errorf("dir %v: N·T2 = %g", dir, d)
		}
		if d := math.Abs(r3.Dot(v.T1, v.T2)); d > tol {
			t.Errorf("dir %v: T1·T2 = %g", dir, d)
		}
		// On a sphere the surface normal is the radial direction.
		if !d3.EqualWithin(v.N, r3.Unit(dir), 1e-10) {
			t.Errorf("dir %v: sphere normal %v not radial", dir, v.N)
		}
		w := r3.Vec{X: 0.3, Y: -1.2, Z: 0.7}
		back := v.LocalToCart(v.CartToLocal(w))
		if !d3.EqualWithin(back, w, 1e-10) {
			t.Errorf("dir %v: frame round trip %v -> %v", dir, w, back)
		}
	}
}
