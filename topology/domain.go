package topology

import "fmt"

// DomainLayout is a rectangular (P/Kp) x (Q/Kn) decomposition of the grid
// into Kp*Kn super-cells. Every satellite belongs to exactly one domain;
// the domain heuristic routes within a domain and searches across them.
type DomainLayout struct {
	Kp int
	Kn int

	topo         *Topology
	planesPerDom int
	slotsPerDom  int
}

// NewDomainLayout validates the (Kp, Kn) decomposition against the
// topology. P and Q must divide evenly into the domain grid.
func NewDomainLayout(t *Topology, kp, kn int) (*DomainLayout, error) {
	if kp <= 0 || kn <= 0 {
		return nil, fmt.Errorf("invalid domain decomposition: Kp=%d, Kn=%d must be positive", kp, kn)
	}
	if t.P%kp != 0 {
		return nil, fmt.Errorf("P=%d is not divisible by Kp=%d", t.P, kp)
	}
	if t.Q%kn != 0 {
		return nil, fmt.Errorf("Q=%d is not divisible by Kn=%d", t.Q, kn)
	}
	return &DomainLayout{
		Kp:           kp,
		Kn:           kn,
		topo:         t,
		planesPerDom: t.P / kp,
		slotsPerDom:  t.Q / kn,
	}, nil
}

// Topology returns the grid this layout decomposes.
func (l *DomainLayout) Topology() *Topology { return l.topo }

// Domains returns the number of super-cells, Kp*Kn.
func (l *DomainLayout) Domains() int { return l.Kp * l.Kn }

// Coords returns the (I, J) domain coordinates of a satellite.
func (l *DomainLayout) Coords(id int) (i, j int) {
	plane, slot := l.topo.PlaneSlot(id)
	return plane / l.planesPerDom, slot / l.slotsPerDom
}

// DomainID returns the flat domain id I*Kn + J of a satellite.
func (l *DomainLayout) DomainID(id int) int {
	i, j := l.Coords(id)
	return i*l.Kn + j
}

// DomainCoords decomposes a flat domain id back into (I, J).
func (l *DomainLayout) DomainCoords(domainID int) (i, j int) {
	return domainID / l.Kn, domainID % l.Kn
}
