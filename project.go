package equimesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// projTol is the squared displacement below which the Newton descent
	// is considered converged.
	projTol = 1e-12
	// projMaxIter hard-caps the descent; projWarnIter is the deliberately
	// lower threshold at which a diagnostic is emitted even though the
	// last iterate is still returned.
	projMaxIter  = 100
	projWarnIter = 90
)

// Project snaps an ambient point onto the zero level set of f by Newton
// descent along the gradient, r ← r − Φ(r)·∇Φ(r)/‖∇Φ(r)‖², and returns the
// fully populated surface vertex at the final iterate. Non-convergence is
// reported through Warnf and is not an error: the last iterate is used.
func Project(r r3.Vec, f *Field) Vertex {
	var ri r3.Vec
	iters := 0
	for r3.Norm2(r3.Sub(r, ri)) > projTol && iters < projMaxIter {
		ri = r
		g := f.Grad(ri)
		r = r3.Sub(ri, r3.Scale(f.At(ri)/r3.Norm2(g), g))
		iters++
	}
	if iters >= projWarnIter {
		Warnf("equimesh: projection onto %s did not converge after %d iterations", f.name, iters)
	}
	return NewVertex(r, f)
}
