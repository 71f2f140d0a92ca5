// Package routing holds the per-node route computers. Each variant fills,
// for one satellite, the table of first-hop directions toward every
// destination; unreachable destinations stay at zero. Computers own their
// scratch buffers so the driver can recompute all nodes in parallel.
package routing

import (
	"github.com/chocolatedesue/satnet/structs"
	"github.com/chocolatedesue/satnet/topology"
)

// Env bundles the immutable topology objects and the shared per-epoch
// world state a computer reads from. Layout is nil for the flat variants.
type Env struct {
	Topo   *topology.Topology
	Delay  topology.DelayModel
	Layout *topology.DomainLayout
	World  *structs.World
}

// Computer recomputes the route table row of one satellite.
type Computer interface {
	// Name identifies the algorithm variant in reports and logs.
	Name() string
	// Compute fills rt (length N) with first-hop directions from this
	// node. rt[self] stays 0, as do entries with no route under the
	// variant's ban map.
	Compute(rt []int)
}

// banSelector picks which ban table of the world a variant respects.
type banSelector func(w *structs.World) [][5]int

func curBans(w *structs.World) [][5]int  { return w.CurBanned }
func futrBans(w *structs.World) [][5]int { return w.FutrBanned }
func noBans(w *structs.World) [][5]int   { return nil }
