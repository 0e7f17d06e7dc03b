package sdfxport_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/equimesh"
	"github.com/soypat/equimesh/helpers/sdfxport"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFieldSDF3(t *testing.T) {
	f, err := equimesh.New("Sphere", 1)
	if err != nil {
		t.Fatal(err)
	}
	box := r3.Box{Min: r3.Vec{X: -2, Y: -2, Z: -2}, Max: r3.Vec{X: 2, Y: 2, Z: 2}}
	s := sdfxport.New(f, box)
	if d := s.Evaluate(sdf.V3{X: 1}); math.Abs(d) > 1e-12 {
		t.Errorf("surface pseudo distance %g, want 0", d)
	}
	if d := s.Evaluate(sdf.V3{X: 0.5}); d >= 0 {
		t.Errorf("interior pseudo distance %g, want negative", d)
	}
	if d := s.Evaluate(sdf.V3{X: 2}); d <= 0 {
		t.Errorf("exterior pseudo distance %g, want positive", d)
	}
	bb := s.BoundingBox()
	if bb.Min.X != -2 || bb.Max.Z != 2 {
		t.Errorf("bounding box %+v does not round trip", bb)
	}
}

// The adapter must be renderable by the sdfx marching cubes pipeline.
func TestSDFXRender(t *testing.T) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	f, err := equimesh.New("Sphere", 1)
	if err != nil {
		t.Fatal(err)
	}
	// Box offset so no grid sample lands on the origin where the gradient
	// vanishes.
	box := r3.Box{
		Min: r3.Vec{X: -1.51, Y: -1.52, Z: -1.53},
		Max: r3.Vec{X: 1.49, Y: 1.48, Z: 1.47},
	}
	s := sdfxport.New(f, box)
	path := filepath.Join(t.TempDir(), "sphere.stl")
	sdfxrender.ToSTL(s, 48, path, &sdfxrender.MarchingCubesOctree{})
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	const stlHeaderSize = 84
	if fi.Size() <= stlHeaderSize {
		t.Errorf("rendered STL only %d bytes", fi.Size())
	}
}
