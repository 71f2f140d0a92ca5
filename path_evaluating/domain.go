package pathevaluate

import (
	"sort"

	"github.com/chocolatedesue/satnet/structs"
	"github.com/chocolatedesue/satnet/topology"
)

// DomainEvaluator completes the partial tables of the domain-heuristic
// variant. Queries inside one domain follow next-hops directly; queries
// across domains run a bounded depth-first search over neighboring
// domains, ordered by the toroidal heuristic and expanded through border
// nodes.
type DomainEvaluator struct {
	topo   *topology.Topology
	delay  topology.DelayModel
	layout *topology.DomainLayout
	border topology.BorderIndex
	world  *structs.World

	maxRecurse int
}

// NewDomainEvaluator wires the evaluator to the shared border index of
// the layout. maxRecurse <= 0 selects the default cap.
func NewDomainEvaluator(layout *topology.DomainLayout, delay topology.DelayModel, world *structs.World, maxRecurse int) *DomainEvaluator {
	if maxRecurse <= 0 {
		maxRecurse = MaxRecurseCount
	}
	return &DomainEvaluator{
		topo:       layout.Topology(),
		delay:      delay,
		layout:     layout,
		border:     topology.BorderIndexFor(layout),
		world:      world,
		maxRecurse: maxRecurse,
	}
}

// Evaluate returns (latency_ms, success) for one query. All search state
// is per-call, so failed and successful queries alike leave the evaluator
// clean for the next one.
func (e *DomainEvaluator) Evaluate(src, dst int, tables [][]int) (float64, bool) {
	srcI, srcJ := e.layout.Coords(src)
	dstI, dstJ := e.layout.Coords(dst)

	if srcI == dstI && srcJ == dstJ {
		return e.walkWithin(src, dst, tables)
	}

	s := &domainSearch{
		ev:      e,
		tables:  tables,
		visited: make([]bool, e.layout.Domains()+1),
		targetI: dstI,
		targetJ: dstJ,
	}
	return s.search(src, dst, topology.None, 0)
}

// walkWithin follows next-hops from src to dst without leaving their
// shared domain. The step budget steps*Kp*Kn > 2N catches cycles; a zero
// next-hop, a banned link, or a hop escaping the domain fails the walk.
func (e *DomainEvaluator) walkWithin(src, dst int, tables [][]int) (float64, bool) {
	cost := 0.0
	cur := src
	steps := 0
	curDom := e.layout.DomainID(cur)

	for cur != dst {
		steps++
		if steps*e.layout.Kp*e.layout.Kn > 2*e.topo.N {
			return -1, false
		}

		dir := topology.Direction(tables[cur][dst])
		if dir == topology.None {
			return -1, false
		}

		nxt, ok := e.topo.Move(cur, dir)
		if !ok || e.world.CurBanned[cur][dir] == 1 {
			return -1, false
		}
		if e.layout.DomainID(nxt) != curDom {
			return -1, false
		}

		cost += e.delay.Delay(cur, nxt, e.world.SatPos)
		cur = nxt
	}
	return cost, true
}

// domainSearch carries the per-call state of one cross-domain query: the
// domain-level visited set and the recursion budget shared across the
// whole search tree.
type domainSearch struct {
	ev      *DomainEvaluator
	tables  [][]int
	visited []bool
	depth   int
	targetI int
	targetJ int
}

func (s *domainSearch) search(cur, dst int, preDir topology.Direction, cost float64) (float64, bool) {
	e := s.ev
	curDom := e.layout.DomainID(cur)
	if s.visited[curDom] {
		return -1, false
	}

	s.depth++
	if s.depth > e.maxRecurse {
		return -1, false
	}

	if cur == dst {
		return cost, true
	}

	s.visited[curDom] = true

	curI, curJ := e.layout.Coords(cur)
	if curI == s.targetI && curJ == s.targetJ {
		if v, ok := e.walkWithin(cur, dst, s.tables); ok {
			return cost + v, true
		}
		s.visited[curDom] = false
		return -1, false
	}

	banned := e.world.CurBanned
	dstDom := e.layout.DomainID(dst)

	// Rank outgoing directions by how close the neighboring domain sits
	// to the destination domain on the torus.
	type scoredDir struct {
		dir   topology.Direction
		score float64
	}
	var order []scoredDir
	for dir := topology.Up; dir <= topology.Left; dir++ {
		if dir == preDir.Inverse() {
			continue
		}
		borderNodes := e.border.Nodes(curDom, dir)
		if len(borderNodes) == 0 {
			continue
		}
		n0, ok := e.topo.Move(borderNodes[0], dir)
		if !ok {
			continue
		}
		nextDom := e.layout.DomainID(n0)
		if s.visited[nextDom] {
			continue
		}
		order = append(order, scoredDir{dir: dir, score: domainScore(e.layout, nextDom, dstDom)})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].score > order[j].score })

	for _, sd := range order {
		dir := sd.dir
		borderNodes := e.border.Nodes(curDom, dir)

		// The current node may itself sit on the border: cross directly.
		if e.border.Contains(curDom, dir, cur) && banned[cur][dir] != 1 {
			if nxt, ok := e.topo.Move(cur, dir); ok && !s.visited[e.layout.DomainID(nxt)] {
				hop := e.delay.Delay(cur, nxt, e.world.SatPos)
				if v, found := s.search(nxt, dst, dir, cost+hop); found {
					return v, true
				}
			}
		}

		// Otherwise reach a border node inside the domain first, best
		// grid-level score first, and cross from there.
		sorted := make([]int, len(borderNodes))
		copy(sorted, borderNodes)
		sort.SliceStable(sorted, func(i, j int) bool {
			return edgeScore(e.topo, sorted[i], dst) > edgeScore(e.topo, sorted[j], dst)
		})

		for _, b := range sorted {
			if b == cur {
				continue
			}
			if s.tables[cur][b] == 0 || banned[b][dir] == 1 {
				continue
			}
			w, ok := e.walkWithin(cur, b, s.tables)
			if !ok {
				continue
			}
			nxt, ok := e.topo.Move(b, dir)
			if !ok {
				continue
			}
			hop := e.delay.Delay(b, nxt, e.world.SatPos)
			if v, found := s.search(nxt, dst, dir, cost+w+hop); found {
				return v, true
			}
		}
	}

	s.visited[curDom] = false
	return -1, false
}
