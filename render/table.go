package render

import (
	"fmt"
	"strconv"

	"github.com/soypat/equimesh"
	"gonum.org/v1/gonum/mat"
)

// Table columns, one row per triangle in emission order. Columns 0-2 hold
// the centroid projected onto the surface, column 3 the Heron area of the
// flat triangle, columns 4-12 the three vertex positions and columns 13-15
// the surface normal at the projected centroid.
const tableCols = 16

// Table finalizes a marched model into a dense N×16 matrix: for each
// triangle the surface-projected centroid, the Heron area, the three vertex
// positions and the normal at the projected centroid. Row order is triangle
// emission order.
func Table(f *equimesh.Field, model []Triangle3) *mat.Dense {
	if len(model) == 0 {
		panic("cannot tabulate empty triangle slice")
	}
	table := mat.NewDense(len(model), tableCols, nil)
	for i, t := range model {
		c := equimesh.Project(t.Centroid(), f)
		table.SetRow(i, []float64{
			c.R.X, c.R.Y, c.R.Z,
			t.Area(),
			t.V[0].R.X, t.V[0].R.Y, t.V[0].R.Z,
			t.V[1].R.X, t.V[1].R.Y, t.V[1].R.Z,
			t.V[2].R.X, t.V[2].R.Y, t.V[2].R.Z,
			c.N.X, c.N.Y, c.N.Z,
		})
	}
	return table
}

// Discretize meshes the named potential's zero level set with triangles of
// edge length near delta and returns the finalized N×16 table. maxTriangles
// bounds the triangle count beyond the six seed triangles; zero or negative
// means unbounded. Argument errors (equimesh.ErrUnknownPotential,
// equimesh.ErrBadArity) abort before any mesh is produced.
func Discretize(delta float64, maxTriangles int, potential string, params ...float64) (*mat.Dense, error) {
	f, err := equimesh.New(potential, params...)
	if err != nil {
		return nil, err
	}
	model, err := RenderAll(NewMarchingTriangulator(f, delta, maxTriangles))
	if err != nil {
		return nil, err
	}
	return Table(f, model), nil
}

// DiscretizeArgs is the loose-argument front door used by command line
// programs: args is the positional list
//
//	delta max_triangles potential [p0 ... p5]
//
// with up to six potential parameters accepted.
func DiscretizeArgs(args []string) (*mat.Dense, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("got %d arguments: %w", len(args), equimesh.ErrNotEnoughParameters)
	}
	delta, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing delta: %w", err)
	}
	maxTriangles, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("parsing max triangle count: %w", err)
	}
	tail := args[3:]
	if len(tail) > 6 {
		return nil, fmt.Errorf("%d potential parameters, at most 6 accepted: %w", len(tail), equimesh.ErrBadArity)
	}
	params := make([]float64, len(tail))
	for i, s := range tail {
		params[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing potential parameter %d: %w", i, err)
		}
	}
	return Discretize(delta, maxTriangles, args[2], params...)
}
