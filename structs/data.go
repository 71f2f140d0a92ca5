package structs

// World is the per-epoch mutable state shared by every node: link bans for
// the current epoch, predicted bans over the next update period, and the
// satellite geometry loaded from the input files. The driver rebuilds it
// between epochs; route computers and evaluators only read it.
type World struct {
	CurBanned  [][5]int     // CurBanned[u][dir]==1: ISL from u in dir is down now
	FutrBanned [][5]int     // union of bans over the upcoming update period
	SatPos     [][3]float64 // ECI coordinates (km)
	SatLLA     [][3]float64 // latitude (deg), longitude (deg), altitude (km)
	SatVel     []float64    // signed movement direction indicator
}

// NewWorld allocates zeroed state for n satellites.
func NewWorld(n int) *World {
	return &World{
		CurBanned:  make([][5]int, n),
		FutrBanned: make([][5]int, n),
		SatPos:     make([][3]float64, n),
		SatLLA:     make([][3]float64, n),
		SatVel:     make([]float64, n),
	}
}

// ClearBans resets a ban table in place.
func ClearBans(banned [][5]int) {
	for i := range banned {
		for j := range banned[i] {
			banned[i][j] = 0
		}
	}
}

// Observer is a configured (src, dst) pair whose end-to-end latency and
// failure rate are aggregated over the run.
type Observer struct {
	Src int
	Dst int
}
