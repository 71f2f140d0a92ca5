package topology

import "math"

// DelayModel holds the per-hop latency constants from the configuration.
// Delay is proc_delay + prop_delay_coef * dist / prop_speed where dist is
// the euclidean separation in km scaled by 1000. The scale factor is a
// unit artifact of the original baselines and is kept for numeric
// compatibility with existing reports.
type DelayModel struct {
	ProcDelay     float64 // ms
	PropDelayCoef float64
	PropSpeed     float64 // km/ms
}

// Dist returns the scaled euclidean separation between satellites a and b.
func (m DelayModel) Dist(a, b int, pos [][3]float64) float64 {
	res := 0.0
	for i := 0; i < 3; i++ {
		d := pos[a][i] - pos[b][i]
		res += d * d
	}
	return math.Sqrt(res) * 1000
}

// Delay returns the one-hop latency in ms between satellites a and b.
func (m DelayModel) Delay(a, b int, pos [][3]float64) float64 {
	if m.PropSpeed == 0 {
		return math.Inf(1)
	}
	return m.ProcDelay + m.PropDelayCoef*m.Dist(a, b, pos)/m.PropSpeed
}
