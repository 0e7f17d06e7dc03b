package equimesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a point on the zero level set together with its orthonormal
// surface frame: unit normal N = ∇Φ/‖∇Φ‖ and tangents T1, T2 = N × T1.
// N points outward only where Φ increases outward (Sphere, Heart,
// RotateRoche); for the Roche and Torus potentials it points inward.
// The inverse of the frame matrix [N|T1|T2] is cached row-wise so
// world→local transforms cost three dot products.
type Vertex struct {
	R, N, T1, T2 r3.Vec
	invM         [3]r3.Vec
}

// NewVertex populates a surface vertex at r from the field's gradient.
// r is taken as-is; callers wanting r on the surface project first.
func NewVertex(r r3.Vec, f *Field) Vertex {
	n := r3.Unit(f.Grad(r))
	var t1 r3.Vec
	if math.Abs(n.X) > 0.5 || math.Abs(n.Y) > 0.5 {
		nn := math.Hypot(n.X, n.Y)
		t1 = r3.Vec{X: n.Y / nn, Y: -n.X / nn}
	} else {
		// n is near the z-axis; pivot on the (x,z) components instead.
		nn := math.Hypot(n.X, n.Z)
		t1 = r3.Vec{X: -n.Z / nn, Z: n.X / nn}
	}
	t2 := r3.Cross(n, t1)
	v := Vertex{R: r, N: n, T1: t1, T2: t2}

	// Inverse of the column matrix M = [n|t1|t2] by adjugate over
	// determinant, computed once per vertex.
	det := n.X*t1.Y*t2.Z - t2.X*t1.Y*n.Z + t1.X*t2.Y*n.Z -
		n.X*t2.Y*t1.Z + t2.X*n.Y*t1.Z - t1.X*n.Y*t2.Z
	v.invM[0] = r3.Vec{
		X: (t1.Y*t2.Z - t2.Y*t1.Z) / det,
		Y: (t2.X*t1.Z - t1.X*t2.Z) / det,
		Z: (t1.X*t2.Y - t2.X*t1.Y) / det,
	}
	v.invM[1] = r3.Vec{
		X: (t2.Y*n.Z - n.Y*t2.Z) / det,
		Y: (n.X*t2.Z - t2.X*n.Z) / det,
		Z: (t2.X*n.Y - n.X*t2.Y) / det,
	}
	v.invM[2] = r3.Vec{
		X: (n.Y*t1.Z - n.Z*t1.Y) / det,
		Y: (t1.X*n.Z - n.X*t1.Z) / det,
		Z: (n.X*t1.Y - t1.X*n.Y) / det,
	}
	return v
}

// CartToLocal expresses the world vector w in the vertex frame with
// component order (n, t1, t2).
func (v *Vertex) CartToLocal(w r3.Vec) r3.Vec {
	return r3.Vec{
		X: r3.Dot(v.invM[0], w),
		Y: r3.Dot(v.invM[1], w),
		Z: r3.Dot(v.invM[2], w),
	}
}

// LocalToCart maps a frame-local vector (n, t1, t2 components) back to
// world coordinates.
func (v *Vertex) LocalToCart(l r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(l.X, v.N), r3.Scale(l.Y, v.T1)), r3.Scale(l.Z, v.T2))
}
