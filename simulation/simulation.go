// Package simulation drives the epoch loop: it rebuilds the world from
// the input files each step, recomputes route tables on the update
// period through the goroutine pool, evaluates every observer pair, and
// emits the aggregated report.
package simulation

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chocolatedesue/satnet/goroutine_pool"
	"github.com/chocolatedesue/satnet/middleware"
	pathevaluate "github.com/chocolatedesue/satnet/path_evaluating"
	"github.com/chocolatedesue/satnet/routing"
	"github.com/chocolatedesue/satnet/structs"
	"github.com/chocolatedesue/satnet/topology"
)

type Simulation struct {
	cfg       *structs.Config
	topo      *topology.Topology
	layout    *topology.DomainLayout
	world     *structs.World
	variant   routing.Variant
	computers []routing.Computer
	evaluator pathevaluate.Evaluator
	observers []structs.Observer
	algorithm string

	routeTables [][]int
	scratchRows [][]int
	dumpRIB     []bool

	curTime  int
	runStart time.Time

	computeTime    Average
	updateEntry    Average
	latencyResults []Average
	failureRates   []Average
}

// New builds the full simulation from a validated configuration: the
// topology, the selected routing variant with one computer per
// satellite, its evaluator, and the observer stats.
func New(cfg *structs.Config) (*Simulation, error) {
	topo, err := topology.New(cfg.Constellation.Planes, cfg.Constellation.SatsPerPlane, cfg.Constellation.RelativeSpacing)
	if err != nil {
		return nil, err
	}

	variant, err := routing.Get(cfg.Algorithm.Name)
	if err != nil {
		return nil, err
	}

	env := &routing.Env{
		Topo: topo,
		Delay: topology.DelayModel{
			ProcDelay:     cfg.ISLLatency.ProcessingDelay,
			PropDelayCoef: cfg.ISLLatency.PropagationDelayCoef,
			PropSpeed:     cfg.ISLLatency.PropagationSpeed,
		},
		World: structs.NewWorld(topo.N),
	}
	if variant.NeedsLayout {
		env.Layout, err = topology.NewDomainLayout(topo, cfg.Domain.Kp, cfg.Domain.Kn)
		if err != nil {
			return nil, err
		}
	}

	observers, err := middleware.LoadObservers(cfg.Paths.ObserverConfig, topo.N)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:            cfg,
		topo:           topo,
		layout:         env.Layout,
		world:          env.World,
		variant:        variant,
		computers:      make([]routing.Computer, topo.N),
		evaluator:      variant.NewEvaluator(env, cfg.Algorithm.MaxRecurseCnt),
		observers:      observers,
		routeTables:    make([][]int, topo.N),
		scratchRows:    make([][]int, topo.N),
		dumpRIB:        make([]bool, topo.N),
		latencyResults: make([]Average, len(observers)),
		failureRates:   make([]Average, len(observers)),
	}
	for i := 0; i < topo.N; i++ {
		s.computers[i] = variant.NewComputer(i, env)
		s.routeTables[i] = make([]int, topo.N)
		s.scratchRows[i] = make([]int, topo.N)
	}
	s.algorithm = s.computers[0].Name()

	for _, node := range cfg.DumpRIBNodes {
		if node < 0 || node >= topo.N {
			return nil, fmt.Errorf("dump_rib_nodes entry %d out of range [0, %d)", node, topo.N)
		}
		s.dumpRIB[node] = true
	}

	goroutine_pool.InitPool(goroutine_pool.RouteComputePool, runtime.NumCPU(), func(arg interface{}) {
		task := arg.(*computeTask)
		task.run()
	})

	log.Infof("Simulation '%s' ready: algorithm=%s, N=%d, observers=%d",
		cfg.Name, s.algorithm, topo.N, len(observers))
	return s, nil
}

// Algorithm returns the display name of the selected variant.
func (s *Simulation) Algorithm() string { return s.algorithm }

// computeTask recomputes one satellite's route row into its scratch
// buffer, then diffs and publishes it into the shared table. Tasks touch
// disjoint rows, so the only coordination needed is the wait group.
type computeTask struct {
	sim       *Simulation
	node      int
	elapsedMs float64
	diff      int
	wg        *sync.WaitGroup
}

func (t *computeTask) run() {
	defer t.wg.Done()
	s := t.sim

	start := time.Now()
	s.computers[t.node].Compute(s.scratchRows[t.node])
	t.elapsedMs = float64(time.Since(start).Microseconds()) / 1000.0

	cur := s.routeTables[t.node]
	fresh := s.scratchRows[t.node]
	for j := range cur {
		if cur[j] != fresh[j] {
			cur[j] = fresh[j]
			t.diff++
		}
	}
}

// recompute refreshes the predicted ban union and rebuilds every route
// row through the pool. Stats are folded in serially after the barrier.
func (s *Simulation) recompute() error {
	if err := s.loadFutrBanned(); err != nil {
		return err
	}

	pool := goroutine_pool.GetPool(goroutine_pool.RouteComputePool)
	var wg sync.WaitGroup
	tasks := make([]*computeTask, s.topo.N)
	for i := 0; i < s.topo.N; i++ {
		tasks[i] = &computeTask{sim: s, node: i, wg: &wg}
		wg.Add(1)
		if pool != nil {
			if err := pool.Invoke(tasks[i]); err != nil {
				log.Errorf("Pool submit failed for node %d, running inline: %v", i, err)
				tasks[i].run()
			}
		} else {
			tasks[i].run()
		}
	}
	wg.Wait()

	for _, t := range tasks {
		s.computeTime.Add(t.elapsedMs)
		if s.curTime != s.cfg.Timing.StartTime {
			s.updateEntry.Add(float64(t.diff))
		}
	}

	for i := 0; i < s.topo.N; i++ {
		if s.dumpRIB[i] {
			s.saveRIB(i)
		}
	}
	return nil
}

// observe evaluates every configured pair against the current tables and
// folds the outcome into the per-observer stats. A failed query adds a
// failure sample and no latency sample.
func (s *Simulation) observe() {
	for i, obs := range s.observers {
		latency, success := s.evaluator.Evaluate(obs.Src, obs.Dst, s.routeTables)
		if success {
			s.latencyResults[i].Add(latency)
			s.failureRates[i].Add(0)
		} else {
			s.failureRates[i].Add(1)
		}
	}
}

// Run executes the epoch loop until the configured duration elapses or
// the context is canceled. A canceled run still writes a report of the
// stats gathered so far before returning the context's error.
func (s *Simulation) Run(ctx context.Context) error {
	timing := s.cfg.Timing
	s.curTime = timing.StartTime
	s.runStart = time.Now()

	for ; s.curTime < timing.StartTime+timing.Duration; s.curTime += timing.StepLength {
		select {
		case <-ctx.Done():
			log.Warnf("Simulation canceled at t=%d", s.curTime)
			if err := s.report(); err != nil {
				log.Errorf("Report emission failed at t=%d: %v", s.curTime, err)
			}
			return ctx.Err()
		default:
		}

		if err := s.loadCurBanned(); err != nil {
			return err
		}
		if err := s.loadSatPos(); err != nil {
			return err
		}
		if err := s.loadSatLLA(); err != nil {
			return err
		}
		if err := s.loadSatVel(); err != nil {
			return err
		}

		if s.curTime%timing.UpdatePeriod == 0 {
			if err := s.recompute(); err != nil {
				return err
			}
		}

		if s.curTime%timing.RefreshPeriod == 0 {
			if err := s.report(); err != nil {
				log.Errorf("Report emission failed at t=%d: %v", s.curTime, err)
			}
		}

		s.observe()
	}

	return s.report()
}
