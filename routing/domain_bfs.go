package routing

import (
	"fmt"

	"github.com/chocolatedesue/satnet/topology"
)

// DomainComputer fills first-hop directions only for destinations inside
// this node's own domain: a BFS that never expands across the domain
// border and respects the current bans. Entries for every other
// destination stay zero and are resolved at query time by the
// cross-domain evaluator.
type DomainComputer struct {
	id     int
	env    *Env
	domain int
	vis    []int
}

// NewDomainComputer requires env.Layout; the registry guarantees it for
// the domain variant.
func NewDomainComputer(id int, env *Env) *DomainComputer {
	return &DomainComputer{
		id:     id,
		env:    env,
		domain: env.Layout.DomainID(id),
		vis:    make([]int, env.Topo.N),
	}
}

func (c *DomainComputer) Name() string {
	return fmt.Sprintf("domain_heuristic_%d_%d", c.env.Layout.Kp, c.env.Layout.Kn)
}

func (c *DomainComputer) Compute(rt []int) {
	t := c.env.Topo
	l := c.env.Layout
	banned := c.env.World.CurBanned

	for i := 0; i < t.N; i++ {
		c.vis[i] = 0
		rt[i] = 0
	}

	queue := make([]int, 0, t.N/l.Domains()+1)
	c.vis[c.id] = 1
	queue = append(queue, c.id)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for dir := topology.Up; dir <= topology.Left; dir++ {
			if banned[u][dir] == 1 {
				continue
			}
			v, ok := t.Move(u, dir)
			if !ok {
				continue
			}
			if l.DomainID(v) != c.domain {
				continue
			}

			if c.vis[v] == 0 {
				c.vis[v] = c.vis[u] + 1
				if u == c.id {
					rt[v] = int(dir)
				} else {
					rt[v] = rt[u]
				}
				queue = append(queue, v)
			} else if c.vis[v] == c.vis[u]+1 {
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
