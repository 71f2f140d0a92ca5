package simulation

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// report writes the aggregated text report and the per-observer CSV into
// the configured report directory.
func (s *Simulation) report() error {
	timing := s.cfg.Timing
	pastTime := float64(s.curTime-timing.StartTime) + 1
	rwTime := time.Since(s.runStart).Seconds()
	eta := rwTime / pastTime * max(float64(timing.Duration)-pastTime, 0)

	log.Infof("Report at t=%d: real-world time %.2fs, ETA %.2fs", s.curTime, rwTime, eta)

	if err := os.MkdirAll(s.cfg.Paths.ReportDir, 0755); err != nil {
		return fmt.Errorf("error creating report dir %s: %w", s.cfg.Paths.ReportDir, err)
	}

	name := fmt.Sprintf("report [%s] %s.txt", s.cfg.Name, s.algorithm)
	f, err := os.Create(filepath.Join(s.cfg.Paths.ReportDir, name))
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "name: %s\n", s.cfg.Name)
	fmt.Fprintf(f, "algorithm: %s\n", s.algorithm)
	fmt.Fprintf(f, "simulation time: %d\n", s.curTime)
	fmt.Fprintf(f, "real-world time: %f\n", rwTime)
	fmt.Fprintf(f, "estimated time of arrival: %f\n", eta)
	fmt.Fprintf(f, "compute time: %f\n", s.computeTime.Result())
	fmt.Fprintf(f, "update entry: %f\n", s.updateEntry.Result())
	fmt.Fprintf(f, "number of observers: %d\n", len(s.observers))
	for i, obs := range s.observers {
		fmt.Fprintf(f, "route path [%d, %d]\n\tlatency: %f\n\tfailure rate: %f\n",
			obs.Src, obs.Dst, s.latencyResults[i].Result(), s.failureRates[i].Result())
	}
	fmt.Fprintf(f, "%s", s.sampleResources())

	return s.writeObserverCSV()
}

func (s *Simulation) writeObserverCSV() error {
	f, err := os.Create(filepath.Join(s.cfg.Paths.ReportDir, "observers.csv"))
	if err != nil {
		return fmt.Errorf("error creating observer CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"src", "dst", "latency_ms", "failure_rate"}); err != nil {
		return err
	}
	for i, obs := range s.observers {
		rec := []string{
			strconv.Itoa(obs.Src),
			strconv.Itoa(obs.Dst),
			strconv.FormatFloat(s.latencyResults[i].Result(), 'f', 6, 64),
			strconv.FormatFloat(s.failureRates[i].Result(), 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// saveRIB dumps one satellite's current route row for offline diffing.
func (s *Simulation) saveRIB(node int) {
	dir := filepath.Join("rib", s.cfg.Name, s.algorithm, strconv.Itoa(node))
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Errorf("Error creating RIB dir %s: %v", dir, err)
		return
	}
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.txt", s.curTime)))
	if err != nil {
		log.Errorf("Error creating RIB file for node %d: %v", node, err)
		return
	}
	defer f.Close()
	for _, hop := range s.routeTables[node] {
		fmt.Fprintf(f, "%d ", hop)
	}
}
