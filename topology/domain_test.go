package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainLayoutValidation(t *testing.T) {
	topo, err := New(4, 4, 0)
	require.NoError(t, err)

	_, err = NewDomainLayout(topo, 0, 2)
	assert.Error(t, err)

	_, err = NewDomainLayout(topo, 3, 2)
	assert.Error(t, err, "P=4 not divisible by Kp=3")

	_, err = NewDomainLayout(topo, 2, 3)
	assert.Error(t, err, "Q=4 not divisible by Kn=3")

	l, err := NewDomainLayout(topo, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Domains())
}

func TestDomainCoordsAndID(t *testing.T) {
	topo, _ := New(4, 4, 0)
	l, err := NewDomainLayout(topo, 2, 2)
	require.NoError(t, err)

	// 2x2 satellites per domain: node 0 is (0,0), node 15 is (1,1).
	cases := []struct {
		id       int
		i, j     int
		domainID int
	}{
		{0, 0, 0, 0},
		{5, 0, 0, 0},
		{2, 0, 1, 1},
		{10, 1, 1, 3},
		{15, 1, 1, 3},
		{8, 1, 0, 2},
	}
	for _, c := range cases {
		i, j := l.Coords(c.id)
		assert.Equalf(t, c.i, i, "id=%d", c.id)
		assert.Equalf(t, c.j, j, "id=%d", c.id)
		assert.Equalf(t, c.domainID, l.DomainID(c.id), "id=%d", c.id)

		di, dj := l.DomainCoords(c.domainID)
		assert.Equal(t, c.i, di)
		assert.Equal(t, c.j, dj)
	}
}

func TestEveryNodeHasOneDomain(t *testing.T) {
	topo, _ := New(8, 10, 3)
	l, err := NewDomainLayout(topo, 4, 5)
	require.NoError(t, err)

	counts := make([]int, l.Domains())
	for id := 0; id < topo.N; id++ {
		d := l.DomainID(id)
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, l.Domains())
		counts[d]++
	}
	perDomain := topo.N / l.Domains()
	for d, c := range counts {
		assert.Equalf(t, perDomain, c, "domain %d", d)
	}
}
