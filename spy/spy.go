package spy

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sparsemat/sparse"
)

// DefaultSize is the edge length used by SavePNG for the rendered image.
const DefaultSize = 4 * vg.Inch

// Plot builds a scatter plot of m's non-zero coordinates. Rows grow
// downward: entry (r, c) is drawn at X=c, Y=Rows()-1-r so row 0 renders at
// the top. An empty matrix yields an empty (but valid) plot.
// Errors: sparse.ErrNilMatrix for a nil matrix.
// Complexity: O(nnz·log nnz).
func Plot(m *sparse.Matrix) (*plot.Plot, error) {
	if m == nil {
		return nil, sparse.ErrNilMatrix
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d×%d, nnz=%d", m.Rows(), m.Cols(), m.NNZ())
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row (top-down)"

	pts := make(plotter.XYs, 0, m.NNZ())
	for _, k := range m.Keys() {
		pts = append(pts, plotter.XY{
			X: float64(k.Col),
			Y: float64(m.Rows() - 1 - k.Row),
		})
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("spy: scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(plotter.NewGrid(), s)

	// pad half a cell so boundary markers are not clipped
	p.X.Min, p.X.Max = -0.5, float64(m.Cols())-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(m.Rows())-0.5

	return p, nil
}

// SavePNG renders m's sparsity pattern to a square PNG at path.
func SavePNG(m *sparse.Matrix, path string) error {
	p, err := Plot(m)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return fmt.Errorf("spy: save %q: %w", path, err)
	}

	return nil
}
