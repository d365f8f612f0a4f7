package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gumdiff/mapping"
)

func TestSparseMono_UnmappedByDefault(t *testing.T) {
	m := mapping.NewSparseMono()
	m.Topit(1000000, 1000000)
	require.False(t, m.IsSrc(999999))
	require.Equal(t, 0, m.Len())
}

func TestSparseMono_CutRemovesBothDirections(t *testing.T) {
	m := mapping.NewSparseMono()
	m.Topit(4, 4)
	m.Link(2, 3)
	require.True(t, m.Has(2, 3))

	m.Cut(2, 3)
	require.False(t, m.IsSrc(2))
	require.False(t, m.IsDst(3))
	_, ok := m.GetDst(2)
	require.False(t, ok)
}
