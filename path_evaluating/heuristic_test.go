package pathevaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chocolatedesue/satnet/topology"
)

func TestToroidalDist(t *testing.T) {
	assert.Equal(t, 0, toroidalDist(3, 3, 8))
	assert.Equal(t, 1, toroidalDist(0, 7, 8), "wrap-around is shorter")
	assert.Equal(t, 4, toroidalDist(0, 4, 8))
	assert.Equal(t, toroidalDist(2, 6, 8), toroidalDist(6, 2, 8))
}

func TestDomainScoreSymmetricNonPositive(t *testing.T) {
	topo, err := topology.New(8, 8, 0)
	require.NoError(t, err)
	l, err := topology.NewDomainLayout(topo, 4, 4)
	require.NoError(t, err)

	for da := 0; da < l.Domains(); da++ {
		for db := 0; db < l.Domains(); db++ {
			s := domainScore(l, da, db)
			assert.Equal(t, s, domainScore(l, db, da))
			assert.LessOrEqual(t, s, 0.0)
		}
		assert.Equal(t, 0.0, domainScore(l, da, da))
	}
}

// The J axis is weighted four times the I axis.
func TestDomainScoreWeighting(t *testing.T) {
	topo, _ := topology.New(8, 8, 0)
	l, _ := topology.NewDomainLayout(topo, 4, 4)

	// Domains 0=(0,0), 1=(0,1), 4=(1,0).
	assert.Equal(t, -4.0, domainScore(l, 0, 1), "one J step")
	assert.Equal(t, -1.0, domainScore(l, 0, 4), "one I step")
}

func TestEdgeScoreSymmetricNonPositive(t *testing.T) {
	topo, err := topology.New(4, 4, 0)
	require.NoError(t, err)

	for a := 0; a < topo.N; a++ {
		for b := 0; b < topo.N; b++ {
			s := edgeScore(topo, a, b)
			assert.Equal(t, s, edgeScore(topo, b, a))
			assert.LessOrEqual(t, s, 0.0)
		}
		assert.Equal(t, 0.0, edgeScore(topo, a, a))
	}
}
