package spy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/spy"
)

func TestPlot_NonEmpty(t *testing.T) {
	m := sparse.New(4, 4)
	m.Set(0, 0, 1)
	m.Set(3, 2, -5)

	p, err := spy.Plot(m)
	require.NoError(t, err)
	require.Equal(t, "4×4, nnz=2", p.Title.Text)
}

func TestPlot_EmptyMatrix(t *testing.T) {
	p, err := spy.Plot(sparse.New(3, 3))
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestPlot_NilMatrix(t *testing.T) {
	_, err := spy.Plot(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestSavePNG_WritesFile(t *testing.T) {
	m := sparse.New(10, 10)
	for i := 0; i < 10; i++ {
		m.Set(i, i, 1)
	}

	path := filepath.Join(t.TempDir(), "spy.png")
	require.NoError(t, spy.SavePNG(m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
