// Package pathevaluate reconstructs end-to-end paths from per-node
// first-hop tables and the current link bans, and prices them with the
// configured delay model. Flat route tables are walked directly; the
// domain-heuristic tables are completed at query time by a guided search
// across domains.
package pathevaluate

// MaxRecurseCount bounds the cross-domain search when the configuration
// does not override it.
const MaxRecurseCount = 10000

// Evaluator computes (latency_ms, success) for one (src, dst) query
// against the route tables of the current epoch. A failed query returns
// (-1, false); it is a value, never a panic, so the driver can count it
// into the observer's failure rate.
type Evaluator interface {
	Evaluate(src, dst int, tables [][]int) (float64, bool)
}
