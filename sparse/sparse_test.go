package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyMatrix(t *testing.T) {
	m := sparse.New(3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, int64(0), m.At(0, 0))
}

func TestSetAt_RoundTrip(t *testing.T) {
	m := sparse.New(2, 2)
	m.Set(1, 0, 7)
	require.Equal(t, int64(7), m.At(1, 0))
	require.Equal(t, 1, m.NNZ())

	// overwrite in place
	m.Set(1, 0, -3)
	require.Equal(t, int64(-3), m.At(1, 0))
	require.Equal(t, 1, m.NNZ())
}

func TestSet_ZeroRemovesEntry(t *testing.T) {
	m := sparse.New(2, 2)
	m.Set(0, 1, 5)
	require.Equal(t, 1, m.NNZ())

	m.Set(0, 1, 0)
	require.Equal(t, int64(0), m.At(0, 1))
	require.Equal(t, 0, m.NNZ(), "zero write must delete, not store")

	// deleting an absent cell is a no-op
	m.Set(9, 9, 0)
	require.Equal(t, 0, m.NNZ())
}

func TestAt_OutOfRangeReadsZero(t *testing.T) {
	m := sparse.New(2, 2)
	require.Equal(t, int64(0), m.At(100, -5))

	// bounds are advisory: writes outside the declared shape are kept
	m.Set(100, 200, 1)
	require.Equal(t, int64(1), m.At(100, 200))
}

func TestClone_Independent(t *testing.T) {
	m := sparse.New(2, 2)
	m.Set(0, 0, 1)
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, 9)
	require.Equal(t, int64(1), m.At(0, 0), "mutating the clone must not touch the original")
	require.False(t, m.Equal(c))
}

func TestKeys_SortedRowMajor(t *testing.T) {
	m := sparse.New(3, 3)
	m.Set(2, 0, 1)
	m.Set(0, 2, 2)
	m.Set(0, 1, 3)
	m.Set(1, 1, 4)

	want := []sparse.Key{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
	require.Equal(t, want, m.Keys())
}

func TestEqual(t *testing.T) {
	a := sparse.New(2, 2)
	b := sparse.New(2, 2)
	require.True(t, a.Equal(b))

	a.Set(0, 0, 1)
	require.False(t, a.Equal(b))

	b.Set(0, 0, 1)
	require.True(t, a.Equal(b))

	// same entries, different shape
	c := sparse.New(2, 3)
	c.Set(0, 0, 1)
	require.False(t, a.Equal(c))

	var nilM *sparse.Matrix
	require.True(t, nilM.Equal(nil))
	require.False(t, a.Equal(nil))
}

func TestString_CanonicalForm(t *testing.T) {
	m := sparse.New(2, 2)
	m.Set(1, 0, 3)
	m.Set(0, 1, 2)
	require.Equal(t, "rows=2\ncols=2\n(0, 1, 2)\n(1, 0, 3)", m.String())
}

func TestString_EmptyMatrix(t *testing.T) {
	require.Equal(t, "rows=0\ncols=0", sparse.New(0, 0).String())
}
