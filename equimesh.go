// Package equimesh discretizes implicit equipotential surfaces, the level
// sets {r : Φ(r) = 0} of scalar potentials common in stellar astrophysics
// (Roche lobes, rotating stars, tori, spheres), into triangular meshes of
// approximately equal edge length.
//
// The package root holds the closed family of potentials with their analytic
// gradients, the Newton projection onto the zero set and the per-vertex
// orthonormal surface frame. The advancing-front triangulator itself lives
// in the render subpackage.
package equimesh

import "log"

// Warnf reports non-fatal numerical diagnostics such as projection
// non-convergence. Defaults to log.Printf. Replaceable for tests or to
// silence output.
var Warnf func(format string, args ...interface{}) = log.Printf
