package routing

import (
	pathevaluate "github.com/chocolatedesue/satnet/path_evaluating"
)

// The flat variants all evaluate through the table walker; only the
// domain heuristic needs the two-level evaluator.
func newWalker(env *Env, _ int) pathevaluate.Evaluator {
	return pathevaluate.NewTableWalker(env.Topo, env.Delay, env.World)
}

func newDomainEvaluator(env *Env, maxRecurse int) pathevaluate.Evaluator {
	return pathevaluate.NewDomainEvaluator(env.Layout, env.Delay, env.World, maxRecurse)
}

func init() {
	for _, v := range []Variant{
		{
			Name:         "min_hop",
			NewComputer:  func(id int, env *Env) Computer { return NewMinHop(id, env) },
			NewEvaluator: newWalker,
		},
		{
			Name:         "min_hop_pred",
			NewComputer:  func(id int, env *Env) Computer { return NewMinHopPred(id, env) },
			NewEvaluator: newWalker,
		},
		{
			Name:         "dijkstra_probe",
			NewComputer:  func(id int, env *Env) Computer { return NewDijkstraProbe(id, env) },
			NewEvaluator: newWalker,
		},
		{
			Name:         "dijkstra_pred",
			NewComputer:  func(id int, env *Env) Computer { return NewDijkstraPred(id, env) },
			NewEvaluator: newWalker,
		},
		{
			Name:         "domain_heuristic",
			NeedsLayout:  true,
			NewComputer:  func(id int, env *Env) Computer { return NewDomainComputer(id, env) },
			NewEvaluator: newDomainEvaluator,
		},
	} {
		if err := Register(v); err != nil {
			panic(err)
		}
	}
}
