package topology

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// BorderIndex records, for every domain d and direction dir, the
// satellites inside d whose neighbor in dir lies in a different domain.
// It is built once per (Kp, Kn) decomposition and read-only afterwards.
type BorderIndex [][5][]int

// Nodes returns the border satellites of a domain in the given direction.
// The returned slice is shared and must not be mutated.
func (b BorderIndex) Nodes(domain int, dir Direction) []int {
	return b[domain][dir]
}

// Contains reports whether id is a border node of domain in dir.
func (b BorderIndex) Contains(domain int, dir Direction, id int) bool {
	for _, n := range b[domain][dir] {
		if n == id {
			return true
		}
	}
	return false
}

// BuildBorderIndex scans every satellite and port once. A node lands in
// B[dom(n)][dir] exactly when Move(n,dir) is defined and leaves dom(n).
func BuildBorderIndex(l *DomainLayout) BorderIndex {
	t := l.Topology()
	index := make(BorderIndex, l.Domains()+1)

	log.Infof("Building border node index: Kp=%d, Kn=%d, domains=%d", l.Kp, l.Kn, l.Domains())

	for n := 0; n < t.N; n++ {
		d := l.DomainID(n)
		for dir := Up; dir <= Left; dir++ {
			m, ok := t.Move(n, dir)
			if !ok {
				continue
			}
			if l.DomainID(m) != d {
				index[d][dir] = append(index[d][dir], n)
			}
		}
	}
	return index
}

type borderKey struct {
	p, q, f, kp, kn int
}

var (
	borderCache     = make(map[borderKey]BorderIndex)
	borderCacheLock sync.RWMutex
)

// BorderIndexFor returns the shared border index for a layout, building it
// on first use. The cache keys on the full (P, Q, F, Kp, Kn) tuple so
// different constellations in one process never collide.
func BorderIndexFor(l *DomainLayout) BorderIndex {
	t := l.Topology()
	key := borderKey{p: t.P, q: t.Q, f: t.F, kp: l.Kp, kn: l.Kn}

	borderCacheLock.RLock()
	if idx, exists := borderCache[key]; exists {
		borderCacheLock.RUnlock()
		return idx
	}
	borderCacheLock.RUnlock()

	borderCacheLock.Lock()
	defer borderCacheLock.Unlock()
	if idx, exists := borderCache[key]; exists {
		return idx
	}
	idx := BuildBorderIndex(l)
	borderCache[key] = idx
	return idx
}
