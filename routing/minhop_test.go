package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chocolatedesue/satnet/topology"
)

func TestMinHopSelfIsZero(t *testing.T) {
	env := newTestEnv(t, 4, 4, 0)
	rt := make([]int, env.Topo.N)
	NewMinHop(3, env).Compute(rt)
	assert.Equal(t, 0, rt[3])
}

func TestMinHopAllReachableWithoutBans(t *testing.T) {
	env := newTestEnv(t, 4, 4, 1)
	tables := computeAll(env, func(id int, env *Env) Computer { return NewMinHop(id, env) })

	for src := 0; src < env.Topo.N; src++ {
		for dst := 0; dst < env.Topo.N; dst++ {
			if src == dst {
				continue
			}
			require.NotZerof(t, tables[src][dst], "src=%d dst=%d", src, dst)
			hops, ok := walkTables(env, tables, src, dst, nil)
			require.Truef(t, ok, "src=%d dst=%d", src, dst)
			require.LessOrEqual(t, hops, env.Topo.N)
		}
	}
}

// Two equally short first hops: the numerically smaller direction wins.
func TestMinHopTieBreak(t *testing.T) {
	env := newTestEnv(t, 4, 4, 0)
	rt := make([]int, env.Topo.N)
	NewMinHop(0, env).Compute(rt)

	// Node 5 is one step right then one down (or down then right);
	// Right=2 beats Down=3.
	assert.Equal(t, int(topology.Right), rt[5])
}

func TestMinHopDeterministic(t *testing.T) {
	env := newTestEnv(t, 4, 4, 1)
	first := make([]int, env.Topo.N)
	second := make([]int, env.Topo.N)
	NewMinHop(7, env).Compute(first)
	NewMinHop(7, env).Compute(second)
	assert.Equal(t, first, second)

	// Recomputing with the same computer instance is also stable.
	c := NewMinHop(7, env)
	c.Compute(first)
	c.Compute(second)
	assert.Equal(t, first, second)
}

func TestMinHopPredAvoidsPredictedFailures(t *testing.T) {
	env := newTestEnv(t, 4, 4, 0)
	banLink(t, env, env.World.FutrBanned, 5, topology.Right)

	tables := computeAll(env, func(id int, env *Env) Computer { return NewMinHopPred(id, env) })

	assert.NotEqual(t, int(topology.Right), tables[5][9], "direct hop is predicted down")
	hops, ok := walkTables(env, tables, 5, 9, env.World.FutrBanned)
	require.True(t, ok, "detour must exist")
	assert.Greater(t, hops, 1)
}

func TestMinHopPredIsolatedDestination(t *testing.T) {
	env := newTestEnv(t, 4, 4, 0)
	for dir := topology.Up; dir <= topology.Left; dir++ {
		banLink(t, env, env.World.FutrBanned, 10, dir)
	}

	rt := make([]int, env.Topo.N)
	NewMinHopPred(5, env).Compute(rt)
	assert.Zero(t, rt[10], "unreachable destination stays 0")
}
