package routing

import (
	"math"

	"github.com/chocolatedesue/satnet/topology"
)

// DijkstraComputer runs single-source Dijkstra with the one-hop delay as
// edge weight. The first-hop entry of a node is overwritten only on a
// strictly shorter path, so equal-cost alternatives never churn the
// table.
type DijkstraComputer struct {
	id   int
	name string
	env  *Env
	bans banSelector
	vis  []int
	dist []float64
}

// NewDijkstraProbe avoids the links observed down in the current epoch.
func NewDijkstraProbe(id int, env *Env) *DijkstraComputer {
	return &DijkstraComputer{
		id: id, name: "dijkstra_probe", env: env, bans: curBans,
		vis: make([]int, env.Topo.N), dist: make([]float64, env.Topo.N),
	}
}

// NewDijkstraPred avoids every link predicted to fail during the
// upcoming update period.
func NewDijkstraPred(id int, env *Env) *DijkstraComputer {
	return &DijkstraComputer{
		id: id, name: "dijkstra_pred", env: env, bans: futrBans,
		vis: make([]int, env.Topo.N), dist: make([]float64, env.Topo.N),
	}
}

func (c *DijkstraComputer) Name() string { return c.name }

func (c *DijkstraComputer) Compute(rt []int) {
	t := c.env.Topo
	banned := c.bans(c.env.World)
	pos := c.env.World.SatPos

	for i := 0; i < t.N; i++ {
		c.vis[i] = 0
		c.dist[i] = math.MaxFloat64
		rt[i] = 0
	}

	pq := make(relaxHeap, 0, t.N)
	c.dist[c.id] = 0
	pq.insert(relaxEntry{dist: 0, node: c.id})

	for len(pq) > 0 {
		top := pq.pop()
		u := top.node
		if top.dist > c.dist[u] {
			continue
		}
		c.vis[u] = 1

		for dir := topology.Up; dir <= topology.Left; dir++ {
			if banned != nil && banned[u][dir] == 1 {
				continue
			}
			v, ok := t.Move(u, dir)
			if !ok {
				continue
			}

			w := c.env.Delay.Delay(u, v, pos)
			if c.dist[u]+w < c.dist[v] {
				c.dist[v] = c.dist[u] + w
				pq.insert(relaxEntry{dist: c.dist[v], node: v})
				if u == c.id {
					rt[v] = int(dir)
				} else {
					rt[v] = rt[u]
				}
			}
		}
	}
}
