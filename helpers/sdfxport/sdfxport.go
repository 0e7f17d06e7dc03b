// Package sdfxport exposes equipotential fields as signed distance functions
// consumable by the sdfx CAD library, so its renderers (marching cubes,
// octree, dual contouring) can mesh the same surfaces as the native marcher.
package sdfxport

import (
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/equimesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// FieldSDF3 adapts an equipotential field to the sdf.SDF3 interface using
// the first order pseudo distance Φ/|∇Φ|. The pseudo distance is exact on
// the surface and degrades away from it, which suffices for root-finding
// renderers.
type FieldSDF3 struct {
	f  *equimesh.Field
	bb sdf.Box3
}

// New wraps f as an SDF3 bounded by box. The box must contain the zero level
// set for sdfx renderers to find the surface.
func New(f *equimesh.Field, box r3.Box) FieldSDF3 {
	if f == nil {
		panic("nil Field argument")
	}
	return FieldSDF3{
		f: f,
		bb: sdf.Box3{
			Min: sdf.V3{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
			Max: sdf.V3{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
		},
	}
}

// Evaluate returns the pseudo distance from p to the zero level set.
func (s FieldSDF3) Evaluate(p sdf.V3) float64 {
	r := r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
	return s.f.At(r) / r3.Norm(s.f.Grad(r))
}

// BoundingBox returns the box passed at construction.
func (s FieldSDF3) BoundingBox() sdf.Box3 {
	return s.bb
}
