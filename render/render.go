// Package render grows triangular meshes over equipotential surfaces with
// an advancing-front marching triangulator and finalizes them into dense
// per-triangle tables or STL files.
package render

import (
	"math"

	"github.com/soypat/equimesh"
	"github.com/soypat/equimesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of mesh triangles. Implementations return io.EOF
// once the model is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a mesh triangle holding its three surface vertices by value.
// Vertices carry full frame information so a triangle can later produce its
// own projected centroid and normal without touching mesh connectivity.
type Triangle3 struct {
	V [3]equimesh.Vertex
}

// Normal returns the unit normal of the flat triangle from its vertex
// positions. The winding follows fan construction order and is not
// guaranteed outward; orient against the projected centroid normal if
// orientation matters.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1].R, t.V[0].R)
	e2 := r3.Sub(t.V[2].R, t.V[0].R)
	return r3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the arithmetic mean of the vertex positions. It lies on
// the flat triangle, not on the surface.
func (t Triangle3) Centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(t.V[0].R, r3.Add(t.V[1].R, t.V[2].R)))
}

// Area returns the flat triangle area by Heron's formula.
func (t Triangle3) Area() float64 {
	s1 := r3.Norm(r3.Sub(t.V[0].R, t.V[1].R))
	s2 := r3.Norm(r3.Sub(t.V[0].R, t.V[2].R))
	s3 := r3.Norm(r3.Sub(t.V[2].R, t.V[1].R))
	s := 0.5 * (s1 + s2 + s3)
	return math.Sqrt(s * (s - s1) * (s - s2) * (s - s3))
}

// Bounds returns the axis-aligned bounding box of a model.
func Bounds(model []Triangle3) r3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for i := range model {
		for _, v := range model[i].V {
			bb = bb.Include(v.R)
		}
	}
	return r3.Box(bb)
}
