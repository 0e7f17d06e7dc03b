package equimesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Field is a named scalar potential Φ bound to its parameter vector, with
// an analytic gradient. The surface meshed by this package is the zero
// level set {r : Φ(r) = 0}.
//
// The potential and gradient closures are selected once at construction so
// the projection and marching inner loops pay no name dispatch.
type Field struct {
	name string
	p    []float64
	at   func(r r3.Vec, p []float64) float64
	grad func(r r3.Vec, p []float64) r3.Vec
}

// fieldEntry declares a registry entry: mandatory parameter count and, where
// the trailing reference value Ω₀ is optional, the padded arity.
type fieldEntry struct {
	arity    int
	optArity int // 0 when no optional trailing parameter exists
	at       func(r r3.Vec, p []float64) float64
	grad     func(r r3.Vec, p []float64) r3.Vec
}

var registry = map[string]fieldEntry{
	"Sphere":                {arity: 1, at: spherePot, grad: sphereGrad},
	"BinaryRoche":           {arity: 3, optArity: 4, at: binaryRochePot, grad: binaryRocheGrad},
	"MisalignedBinaryRoche": {arity: 5, optArity: 6, at: misalignedRochePot, grad: misalignedRocheGrad},
	"RotateRoche":           {arity: 2, at: rotateRochePot, grad: rotateRocheGrad},
	"Torus":                 {arity: 2, at: torusPot, grad: torusGrad},
	"Heart":                 {arity: 0, at: heartPot, grad: heartGrad},
}

// New looks up a potential by name and binds its parameter vector.
// Arities follow the registry: Sphere(radius), BinaryRoche(d, q, F[, Ω₀]),
// MisalignedBinaryRoche(d, q, F, θ, φ[, Ω₀]), RotateRoche(ω, r₀),
// Torus(R, r), Heart(). Optional Ω₀ defaults to zero.
func New(name string, params ...float64) (*Field, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPotential)
	}
	n := len(params)
	switch {
	case n == entry.arity:
		// Pad the optional trailing parameter with its zero default so the
		// potential closures can index it unconditionally.
		if entry.optArity > entry.arity {
			params = append(params[:n:n], make([]float64, entry.optArity-n)...)
		}
	case entry.optArity > 0 && n == entry.optArity:
	default:
		return nil, fmt.Errorf("%q got %d parameters: %w", name, n, ErrBadArity)
	}
	return &Field{name: name, p: params, at: entry.at, grad: entry.grad}, nil
}

// Name returns the registry name the field was constructed with.
func (f *Field) Name() string { return f.name }

// Params returns the bound parameter vector, including any defaulted
// trailing value. The caller must not modify it.
func (f *Field) Params() []float64 { return f.p }

// At evaluates Φ(r).
func (f *Field) At(r r3.Vec) float64 { return f.at(r, f.p) }

// Grad evaluates ∇Φ(r).
func (f *Field) Grad(r r3.Vec) r3.Vec { return f.grad(r, f.p) }

// Sphere of radius p[0] centered on the origin.

func spherePot(r r3.Vec, p []float64) float64 {
	return r.X*r.X + r.Y*r.Y + r.Z*r.Z - p[0]*p[0]
}

func sphereGrad(r r3.Vec, p []float64) r3.Vec {
	return r3.Vec{X: 2 * r.X, Y: 2 * r.Y, Z: 2 * r.Z}
}

// Synchronously rotating binary Roche potential minus its reference value.
// p = (d, q, F, Ω₀): instantaneous separation, mass ratio, synchronicity
// parameter and surface potential.

func binaryRochePot(r r3.Vec, p []float64) float64 {
	return 1/math.Sqrt(r.X*r.X+r.Y*r.Y+r.Z*r.Z) +
		p[1]*(1/math.Sqrt((r.X-p[0])*(r.X-p[0])+r.Y*r.Y+r.Z*r.Z)-r.X/p[0]/p[0]) +
		0.5*p[2]*p[2]*(1+p[1])*(r.X*r.X+r.Y*r.Y) - p[3]
}

func binaryRocheGrad(r r3.Vec, p []float64) r3.Vec {
	r1 := math.Pow(r.X*r.X+r.Y*r.Y+r.Z*r.Z, -1.5)
	r2 := math.Pow((r.X-p[0])*(r.X-p[0])+r.Y*r.Y+r.Z*r.Z, -1.5)
	return r3.Vec{
		X: -r.X*r1 - p[1]*(r.X-p[0])*r2 - p[1]/p[0]/p[0] + p[2]*p[2]*(1+p[1])*r.X,
		Y: -r.Y*r1 - p[1]*r.Y*r2 + p[2]*p[2]*(1+p[1])*r.Y,
		Z: -r.Z*r1 - p[1]*r.Z*r2,
	}
}

// Misaligned binary Roche potential. p = (d, q, F, θ, φ, Ω₀) where θ and φ
// orient the spin axis against the orbital angular momentum.

func misalignedRochePot(r r3.Vec, p []float64) float64 {
	sinθ2 := math.Sin(p[3]) * math.Sin(p[3])
	delta := (1-math.Cos(p[4])*math.Cos(p[4])*sinθ2)*r.X*r.X +
		(1-math.Sin(p[4])*math.Sin(p[4])*sinθ2)*r.Y*r.Y +
		sinθ2*r.Z*r.Z -
		sinθ2*math.Sin(2*p[4])*r.X*r.Y -
		math.Sin(2*p[3])*math.Cos(p[4])*r.X*r.Z -
		math.Sin(2*p[3])*math.Sin(p[4])*r.Y*r.Z
	return 1/math.Sqrt(r.X*r.X+r.Y*r.Y+r.Z*r.Z) +
		p[1]*(1/math.Sqrt((r.X-p[0])*(r.X-p[0])+r.Y*r.Y+r.Z*r.Z)-r.X/p[0]/p[0]) +
		0.5*p[2]*p[2]*(1+p[1])*delta - p[5]
}

func misalignedRocheGrad(r r3.Vec, p []float64) r3.Vec {
	sinθ2 := math.Sin(p[3]) * math.Sin(p[3])
	r1 := math.Pow(r.X*r.X+r.Y*r.Y+r.Z*r.Z, -1.5)
	r2 := math.Pow((r.X-p[0])*(r.X-p[0])+r.Y*r.Y+r.Z*r.Z, -1.5)
	cf := 0.5 * p[2] * p[2] * (1 + p[1])
	dx := 2*(1-math.Cos(p[4])*math.Cos(p[4])*sinθ2)*r.X -
		sinθ2*math.Sin(2*p[4])*r.Y -
		math.Sin(2*p[3])*math.Cos(p[4])*r.Z
	dy := 2*(1-math.Sin(p[4])*math.Sin(p[4])*sinθ2)*r.Y -
		sinθ2*math.Sin(2*p[4])*r.X -
		math.Sin(2*p[3])*math.Sin(p[4])*r.Z
	dz := 2*sinθ2*r.Z -
		math.Sin(2*p[3])*math.Cos(p[4])*r.X -
		math.Sin(2*p[3])*math.Sin(p[4])*r.Y
	return r3.Vec{
		X: -r.X*r1 - p[1]*(r.X-p[0])*r2 - p[1]/p[0]/p[0] + cf*dx,
		Y: -r.Y*r1 - p[1]*r.Y*r2 + cf*dy,
		Z: -r.Z*r1 - p[1]*r.Z*r2 + cf*dz,
	}
}

// Single rotating star. p = (ω, r₀): angular velocity as a fraction of the
// critical (breakup) velocity, and polar radius. omegaCritical converts the
// fraction to the dimensionless angular velocity.
const omegaCritical = 0.54433105395181736

func rotateRochePot(r r3.Vec, p []float64) float64 {
	omega := p[0] * omegaCritical
	rp := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
	return 1/p[1] - 1/rp - 0.5*omega*omega*(r.X*r.X+r.Y*r.Y)
}

func rotateRocheGrad(r r3.Vec, p []float64) r3.Vec {
	omega := p[0] * omegaCritical
	r1 := math.Pow(r.X*r.X+r.Y*r.Y+r.Z*r.Z, -1.5)
	return r3.Vec{
		X: r.X*r1 - omega*omega*r.X,
		Y: r.Y*r1 - omega*omega*r.Y,
		Z: r.Z * r1,
	}
}

// Torus with major radius p[0] and minor radius p[1], axis along z.

func torusPot(r r3.Vec, p []float64) float64 {
	return p[1]*p[1] - p[0]*p[0] + 2*p[0]*math.Sqrt(r.X*r.X+r.Y*r.Y) -
		r.X*r.X - r.Y*r.Y - r.Z*r.Z
}

func torusGrad(r r3.Vec, p []float64) r3.Vec {
	rc := math.Pow(r.X*r.X+r.Y*r.Y, -0.5)
	return r3.Vec{
		X: 2*p[0]*r.X*rc - 2*r.X,
		Y: 2*p[0]*r.Y*rc - 2*r.Y,
		Z: -2 * r.Z,
	}
}

// Unit algebraic heart surface. Takes no parameters.

func heartPot(r r3.Vec, p []float64) float64 {
	q := r.X*r.X + 9./4.*r.Y*r.Y + r.Z*r.Z - 1
	return q*q*q - r.X*r.X*r.Z*r.Z*r.Z - 9./80.*r.Y*r.Y*r.Z*r.Z*r.Z
}

func heartGrad(r r3.Vec, p []float64) r3.Vec {
	q := r.X*r.X + 9./4.*r.Y*r.Y + r.Z*r.Z - 1
	return r3.Vec{
		X: 3*q*q*2*r.X - 2*r.X*r.Z*r.Z*r.Z,
		Y: 3*q*q*9./2.*r.Y - 9./40.*r.Y*r.Z*r.Z*r.Z,
		Z: 3*q*q*2*r.Z - 3*r.X*r.X*r.Z*r.Z - 27./80.*r.Y*r.Y*r.Z*r.Z,
	}
}
