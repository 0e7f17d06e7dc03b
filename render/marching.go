package render

import (
	"io"
	"math"

	"github.com/soypat/equimesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// maxWedgeTriangles bounds the triangles a single front advance can emit.
// The minimum interior angle is below 2π so a wedge is divided into at most
// six triangles: up to five fan triangles plus the closing triangle.
const maxWedgeTriangles = 8

// marching is the advancing-front triangulator. It grows a single-component
// mesh outward from a seed point on the surface, keeping the active front
// polygon and repeatedly closing the front vertex with the smallest
// interior angle using triangles of edge length near delta.
type marching struct {
	field        *equimesh.Field
	delta        float64
	maxTriangles int
	front        front
	unwritten    triangle3Buffer
	// emitted counts triangles produced after the seed hexagon, checked
	// against maxTriangles.
	emitted int
	seeded  bool
	done    bool
}

// NewMarchingTriangulator returns a Renderer that meshes the zero level set
// of f with triangles of edge length approximately delta. maxTriangles
// bounds the number of triangles emitted beyond the six seed triangles;
// zero or negative means unbounded. The mesh streams out in emission order
// through ReadTriangles.
func NewMarchingTriangulator(f *equimesh.Field, delta float64, maxTriangles int) *marching {
	if f == nil {
		panic("nil Field argument")
	}
	if delta <= 0 {
		panic("delta must be positive")
	}
	return &marching{
		field:        f,
		delta:        delta,
		maxTriangles: maxTriangles,
		unwritten:    triangle3Buffer{buf: make([]Triangle3, 0, 64)},
	}
}

// ReadTriangles writes triangles marched over the surface into the argument
// buffer. Returns the number of triangles written and io.EOF once the front
// has closed and all triangles have been read.
func (m *marching) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if !m.seeded {
		m.seed()
		m.seeded = true
	}
	if m.unwritten.Len() > 0 {
		n += m.unwritten.Read(dst[n:])
		if n == len(dst) {
			return n, nil
		}
	}
	if m.done && m.unwritten.Len() == 0 {
		// Front closed or triangle budget exhausted.
		return n, io.EOF
	}
	for n < len(dst) && !m.done {
		if len(dst)-n < maxWedgeTriangles {
			// Not enough room to guarantee a whole wedge fits.
			var tmp [maxWedgeTriangles]Triangle3
			nt := m.advance(tmp[:])
			m.unwritten.Write(tmp[:nt])
			break
		}
		n += m.advance(dst[n:])
	}
	return n, nil
}

// seed projects the off-origin seed point onto the surface and surrounds it
// with a hexagonal ring of projected points at distance delta in the seed's
// tangent plane. The six seed triangles go to the unwritten buffer and the
// ring becomes the initial front.
func (m *marching) seed() {
	// Small displacement off the origin keeps potentials with a central
	// singularity evaluable at the seed.
	p0 := equimesh.Project(r3.Vec{X: -2e-5}, m.field)
	var ring [6]equimesh.Vertex
	var tris [6]Triangle3
	for i := range ring {
		phi := float64(i) * math.Pi / 3
		q := r3.Add(p0.R, r3.Add(
			r3.Scale(m.delta*math.Cos(phi), p0.T1),
			r3.Scale(m.delta*math.Sin(phi), p0.T2)))
		ring[i] = equimesh.Project(q, m.field)
	}
	for i := range ring {
		tris[i] = Triangle3{V: [3]equimesh.Vertex{p0, ring[i], ring[(i+1)%6]}}
	}
	m.front.v = append(m.front.v, ring[:]...)
	m.unwritten.Write(tris[:])
}

// advance closes one wedge: finds the front vertex with the smallest
// interior angle, fans it with triangles of apex angle near π/3 and splices
// the newly projected arc into the front. Emitted triangles are written to
// dst, which must have room for maxWedgeTriangles. Returns the number of
// triangles written.
func (m *marching) advance(dst []Triangle3) (n int) {
	// A front of fewer than three vertices encloses no surface; stepping it
	// would only emit zero-area triangles.
	if m.front.len() < 3 {
		m.done = true
		return 0
	}
	P := m.front.v
	omega := make([]float64, len(P))
	for i := range P {
		a := P[i].CartToLocal(r3.Sub(P[m.front.prev(i)].R, P[i].R))
		b := P[i].CartToLocal(r3.Sub(P[m.front.next(i)].R, P[i].R))
		// Interior angle between the neighbor directions measured in the
		// (t1, t2) tangent plane, normalized into [0, 2π).
		w := math.Atan2(b.Z, b.Y) - math.Atan2(a.Z, a.Y)
		if w < 0 {
			w += 2 * math.Pi
		}
		omega[i] = math.Mod(w, 2*math.Pi)
	}
	k := argmin(omega)
	alpha := omega[k]

	// Number of fan triangles targets ~π/3 apex angles. Subdivisions
	// narrower than 0.8 rad are widened to avoid slivers.
	nt := int(alpha*3/math.Pi) + 1
	domega := alpha / float64(nt)
	if domega < 0.8 && nt > 1 {
		nt--
		domega = alpha / float64(nt)
	}

	vm := P[m.front.prev(k)]
	vp := P[m.front.next(k)]
	pivot := P[k]

	emit := func(t Triangle3) bool {
		if m.maxTriangles > 0 && m.emitted >= m.maxTriangles {
			m.done = true
			return false
		}
		dst[n] = t
		n++
		m.emitted++
		return true
	}

	arc := make([]equimesh.Vertex, 0, nt-1)
	prev := vm
	for i := 1; i < nt; i++ {
		off := pivot.CartToLocal(r3.Sub(vm.R, pivot.R))
		theta := float64(i) * domega
		u := off.Y*math.Cos(theta) - off.Z*math.Sin(theta)
		w := off.Y*math.Sin(theta) + off.Z*math.Cos(theta)
		// Rescale the rotated tangent 2-vector to length delta. The
		// normal component of the offset is dropped, an approximation
		// that loses offset on strongly curved surfaces but is corrected
		// by the projection below.
		norm := math.Hypot(u, w)
		l := r3.Vec{Y: u / (norm / m.delta), Z: w / (norm / m.delta)}
		q := equimesh.Project(r3.Add(pivot.R, pivot.LocalToCart(l)), m.field)
		arc = append(arc, q)
		if !emit(Triangle3{V: [3]equimesh.Vertex{prev, q, pivot}}) {
			return n
		}
		prev = q
	}
	if nt == 1 {
		if !emit(Triangle3{V: [3]equimesh.Vertex{vm, vp, pivot}}) {
			return n
		}
	} else {
		if !emit(Triangle3{V: [3]equimesh.Vertex{prev, vp, pivot}}) {
			return n
		}
	}

	m.front.splice(k, arc)
	if m.front.len() < 3 {
		m.done = true
	}
	return n
}

// argmin returns the index of the smallest element. A candidate must beat
// the current minimum by more than 1e-6 to displace it, so near-ties keep
// the earliest index. Different tie-breaks yield different meshes; this one
// is kept deliberately.
func argmin(w []float64) int {
	min := 0
	for i := 1; i < len(w); i++ {
		if w[min]-w[i] > 1e-6 {
			min = i
		}
	}
	return min
}
