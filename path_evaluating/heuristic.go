package pathevaluate

import "github.com/chocolatedesue/satnet/topology"

// toroidalDist is the wrap-around distance between two coordinates on a
// ring of size m.
func toroidalDist(a, b, m int) int {
	d1 := ((a-b)%m + m) % m
	d2 := ((b-a)%m + m) % m
	if d1 < d2 {
		return d1
	}
	return d2
}

// domainScore ranks a candidate next domain by its negated toroidal
// taxicab distance to the destination domain, weighting the intra-plane
// (J) axis four times the inter-plane (I) axis. Larger is better; zero
// means same domain.
func domainScore(l *topology.DomainLayout, da, db int) float64 {
	ia, ja := l.DomainCoords(da)
	ib, jb := l.DomainCoords(db)
	vertical := toroidalDist(ja, jb, l.Kn)
	horizontal := toroidalDist(ia, ib, l.Kp)
	return -float64(4*vertical + horizontal)
}

// edgeScore is the same measure on full grid coordinates, used to order
// the border nodes of a direction so expansion starts at the edge of the
// domain closest to the destination.
func edgeScore(t *topology.Topology, a, b int) float64 {
	pa, sa := t.PlaneSlot(a)
	pb, sb := t.PlaneSlot(b)
	vertical := toroidalDist(sa, sb, t.Q)
	horizontal := toroidalDist(pa, pb, t.P)
	return -float64(4*vertical + horizontal)
}
