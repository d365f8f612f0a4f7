package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gumdiff/mapping"
)

func TestDenseMono_TopitGrowsAndPreserves(t *testing.T) {
	m := mapping.NewDenseMono()
	m.Topit(2, 2)
	m.Link(1, 1)

	// A second, larger Topit must not clobber the existing link.
	m.Topit(5, 5)
	left, right := m.Capacity()
	require.GreaterOrEqual(t, left, 6)
	require.GreaterOrEqual(t, right, 6)
	require.True(t, m.Has(1, 1))

	// A smaller Topit call is a no-op (capacity never shrinks).
	m.Topit(0, 0)
	left2, right2 := m.Capacity()
	require.Equal(t, left, left2)
	require.Equal(t, right, right2)
}

func TestDenseMono_LenScansNonZero(t *testing.T) {
	m := mapping.NewDenseMono()
	m.Topit(5, 5)
	require.Equal(t, 0, m.Len())

	m.Link(0, 0)
	m.Link(1, 2)
	require.Equal(t, 2, m.Len())

	m.Cut(0, 0)
	require.Equal(t, 1, m.Len())
}

func TestDenseMono_GetOutOfRangeIsUnmapped(t *testing.T) {
	m := mapping.NewDenseMono()
	m.Topit(2, 2)
	_, ok := m.GetDst(99)
	require.False(t, ok)
	_, ok = m.GetSrc(99)
	require.False(t, ok)
}
