package routing

import "github.com/chocolatedesue/satnet/topology"

// MinHopComputer runs a single-source BFS and stores, for every reached
// destination, the first direction taken out of the source. On equal hop
// count the numerically smaller first direction wins, which keeps tables
// reproducible across runs.
type MinHopComputer struct {
	id   int
	name string
	env  *Env
	bans banSelector
	vis  []int
}

// NewMinHop ignores link failures entirely (the baseline table).
func NewMinHop(id int, env *Env) *MinHopComputer {
	return &MinHopComputer{id: id, name: "min_hop", env: env, bans: noBans, vis: make([]int, env.Topo.N)}
}

// NewMinHopPred avoids every link predicted to fail during the upcoming
// update period.
func NewMinHopPred(id int, env *Env) *MinHopComputer {
	return &MinHopComputer{id: id, name: "min_hop_pred", env: env, bans: futrBans, vis: make([]int, env.Topo.N)}
}

func (c *MinHopComputer) Name() string { return c.name }

func (c *MinHopComputer) Compute(rt []int) {
	t := c.env.Topo
	banned := c.bans(c.env.World)

	for i := 0; i < t.N; i++ {
		c.vis[i] = 0
		rt[i] = 0
	}

	queue := make([]int, 0, t.N)
	c.vis[c.id] = 1
	queue = append(queue, c.id)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for dir := topology.Up; dir <= topology.Left; dir++ {
			if banned != nil && banned[u][dir] == 1 {
				continue
			}
			v, ok := t.Move(u, dir)
			if !ok {
				continue
			}

			if c.vis[v] == 0 {
				c.vis[v] = c.vis[u] + 1
				queue = append(queue, v)
			}

			// Same shortest distance: keep the path whose first step out
			// of the source has the smallest direction index.
			if c.vis[v] == c.vis[u]+1 {
				firstDir := rt[u]
				if u == c.id {
					firstDir = int(dir)
				}
				if rt[v] == 0 || firstDir < rt[v] {
					rt[v] = firstDir
				}
			}
		}
	}
}
