package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chocolatedesue/satnet/structs"
	"github.com/chocolatedesue/satnet/topology"
)

// newTestEnv builds an environment with satellites spread on a unit
// circle so every link has a positive length.
func newTestEnv(t *testing.T, p, q, f int) *Env {
	t.Helper()
	topo, err := topology.New(p, q, f)
	require.NoError(t, err)

	world := structs.NewWorld(topo.N)
	for i := 0; i < topo.N; i++ {
		theta := 2 * math.Pi * float64(i) / float64(topo.N)
		world.SatPos[i] = [3]float64{math.Cos(theta), math.Sin(theta), 0}
	}

	return &Env{
		Topo:  topo,
		Delay: topology.DelayModel{ProcDelay: 1, PropDelayCoef: 1, PropSpeed: 299792.458},
		World: world,
	}
}

// banLink downs the ISL from u in dir on both endpoints, keeping the ban
// tables symmetric.
func banLink(t *testing.T, env *Env, banned [][5]int, u int, dir topology.Direction) {
	t.Helper()
	v, ok := env.Topo.Move(u, dir)
	require.True(t, ok)
	banned[u][dir] = 1
	banned[v][dir.Inverse()] = 1
}

// computeAll produces the full route table set for a variant factory.
func computeAll(env *Env, factory func(id int, env *Env) Computer) [][]int {
	tables := make([][]int, env.Topo.N)
	for i := 0; i < env.Topo.N; i++ {
		tables[i] = make([]int, env.Topo.N)
		factory(i, env).Compute(tables[i])
	}
	return tables
}

// walkTables follows first-hop directions from src to dst and reports the
// hop count, failing on bans, zero entries, or more than N hops.
func walkTables(env *Env, tables [][]int, src, dst int, banned [][5]int) (int, bool) {
	cur := src
	hops := 0
	for cur != dst {
		if hops >= env.Topo.N {
			return hops, false
		}
		dir := topology.Direction(tables[cur][dst])
		if dir == topology.None {
			return hops, false
		}
		if banned != nil && banned[cur][dir] == 1 {
			return hops, false
		}
		nxt, ok := env.Topo.Move(cur, dir)
		if !ok {
			return hops, false
		}
		cur = nxt
		hops++
	}
	return hops, true
}
