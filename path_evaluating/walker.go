package pathevaluate

import (
	"github.com/chocolatedesue/satnet/structs"
	"github.com/chocolatedesue/satnet/topology"
)

// stampReset bounds the visited-stamp counter before a full wipe.
const stampReset = 1e8

// TableWalker follows next-hop directions across the whole grid. It
// serves the variants whose tables cover every destination (min-hop and
// Dijkstra). Revisiting a node under the same stamp means the table has a
// cycle; the walk fails rather than loop.
type TableWalker struct {
	topo  *topology.Topology
	delay topology.DelayModel
	world *structs.World

	stamp int
	seen  []int
}

// NewTableWalker builds a walker over the shared world state. It keeps
// per-instance scratch and is not safe for concurrent use; the driver
// evaluates observers from a single collector goroutine.
func NewTableWalker(topo *topology.Topology, delay topology.DelayModel, world *structs.World) *TableWalker {
	return &TableWalker{
		topo:  topo,
		delay: delay,
		world: world,
		seen:  make([]int, topo.N),
	}
}

// Evaluate walks from src toward dst, pricing each hop, until arrival or
// a structural failure: a zero next-hop, a banned link, or a revisit.
func (w *TableWalker) Evaluate(src, dst int, tables [][]int) (float64, bool) {
	if w.stamp >= stampReset {
		for i := range w.seen {
			w.seen[i] = 0
		}
		w.stamp = 0
	}
	w.stamp++

	latency := 0.0
	cur := src
	for cur != dst {
		dir := topology.Direction(tables[cur][dst])
		if dir == topology.None || w.world.CurBanned[cur][dir] == 1 || w.seen[cur] == w.stamp {
			return -1, false
		}
		w.seen[cur] = w.stamp

		nxt, ok := w.topo.Move(cur, dir)
		if !ok {
			return -1, false
		}
		latency += w.delay.Delay(cur, nxt, w.world.SatPos)
		cur = nxt
	}
	return latency, true
}
