package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, 4, 0)
	assert.Error(t, err)

	_, err = New(4, 0, 0)
	assert.Error(t, err)

	_, err = New(4, 4, 4)
	assert.Error(t, err, "F must be smaller than Q")

	topo, err := New(4, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, topo.N)
}

func TestDirectionInverse(t *testing.T) {
	assert.Equal(t, Down, Up.Inverse())
	assert.Equal(t, Up, Down.Inverse())
	assert.Equal(t, Left, Right.Inverse())
	assert.Equal(t, Right, Left.Inverse())
	assert.Equal(t, None, None.Inverse())
}

func TestMoveIntraPlane(t *testing.T) {
	topo, err := New(4, 4, 0)
	require.NoError(t, err)

	// node 0 = (plane 0, slot 0)
	v, ok := topo.Move(0, Down)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = topo.Move(0, Up)
	require.True(t, ok)
	assert.Equal(t, 3, v, "up from slot 0 wraps to slot Q-1")

	v, ok = topo.Move(0, Right)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMoveSeamSkew(t *testing.T) {
	topo, err := New(4, 4, 1)
	require.NoError(t, err)

	// Right from the last plane wraps to plane 0 with a +F slot shift.
	v, ok := topo.Move(12, Right) // (plane 3, slot 0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Left from plane 0 undoes the shift.
	v, ok = topo.Move(1, Left)
	require.True(t, ok)
	assert.Equal(t, 12, v)
}

func TestMoveInvalidDirection(t *testing.T) {
	topo, _ := New(4, 4, 0)
	_, ok := topo.Move(0, None)
	assert.False(t, ok)
	_, ok = topo.Move(0, Direction(5))
	assert.False(t, ok)
}

// Every defined step must be undone by the inverse direction.
func TestMoveInverseInvolution(t *testing.T) {
	for _, f := range []int{0, 1, 2} {
		topo, err := New(6, 8, f)
		require.NoError(t, err)
		for u := 0; u < topo.N; u++ {
			for dir := Up; dir <= Left; dir++ {
				v, ok := topo.Move(u, dir)
				if !ok {
					continue
				}
				back, ok := topo.Move(v, dir.Inverse())
				require.True(t, ok)
				require.Equalf(t, u, back, "F=%d u=%d dir=%v", f, u, dir)
			}
		}
	}
}

func TestPortOf(t *testing.T) {
	topo, err := New(4, 4, 1)
	require.NoError(t, err)

	pu, pv, ok := topo.PortOf(0, 1)
	require.True(t, ok)
	assert.Equal(t, Down, pu)
	assert.Equal(t, Up, pv)

	// Across the seam with skew.
	pu, pv, ok = topo.PortOf(12, 1)
	require.True(t, ok)
	assert.Equal(t, Right, pu)
	assert.Equal(t, Left, pv)

	// Non-adjacent pair.
	_, _, ok = topo.PortOf(0, 9)
	assert.False(t, ok)
}

func TestPortOfConsistentWithMove(t *testing.T) {
	topo, err := New(5, 6, 2)
	require.NoError(t, err)
	for u := 0; u < topo.N; u++ {
		for dir := Up; dir <= Left; dir++ {
			v, ok := topo.Move(u, dir)
			if !ok {
				continue
			}
			pu, pv, ok := topo.PortOf(u, v)
			require.True(t, ok)
			m, _ := topo.Move(u, pu)
			require.Equal(t, v, m)
			m, _ = topo.Move(v, pv)
			require.Equal(t, u, m)
		}
	}
}
