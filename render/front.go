package render

import "github.com/soypat/equimesh"

// front is the active polygon separating triangulated surface from
// untriangulated surface. Indexing is circular. A contiguous slice with
// linear-time splice beats a linked list at the front sizes this package
// sees (thousands of vertices).
type front struct {
	v []equimesh.Vertex
}

func (p *front) len() int { return len(p.v) }

func (p *front) prev(i int) int {
	if i == 0 {
		return len(p.v) - 1
	}
	return i - 1
}

func (p *front) next(i int) int {
	if i == len(p.v)-1 {
		return 0
	}
	return i + 1
}

// splice replaces the single element at idx with the ordered contents of
// arc. The circular order of all other elements is preserved and indices
// below idx are stable. An empty result leaves an empty front.
func (p *front) splice(idx int, arc []equimesh.Vertex) {
	out := make([]equimesh.Vertex, 0, len(p.v)-1+len(arc))
	out = append(out, p.v[:idx]...)
	out = append(out, arc...)
	out = append(out, p.v[idx+1:]...)
	p.v = out
}
