package simulation

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/chocolatedesue/satnet/structs"
)

// readISLState merges the failed-link pairs of one epoch file into a ban
// table. Records are whitespace-separated undirected endpoint pairs; each
// is resolved to its two directional ports, and both ends are banned. A
// missing file means no failures at that epoch. A pair that is not
// adjacent in the topology is a corrupt input and aborts the run.
func (s *Simulation) readISLState(time int, banned [][5]int) error {
	path := filepath.Join(s.cfg.Paths.ISLStateDir, fmt.Sprintf("%d.txt", time))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No ISL state file for t=%d, assuming all links up", time)
			return nil
		}
		return fmt.Errorf("error opening ISL state file %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		var u, v int
		_, err := fmt.Fscan(r, &u, &v)
		if err != nil {
			break
		}
		if u < 0 || u >= s.topo.N || v < 0 || v >= s.topo.N {
			return fmt.Errorf("ISL state file %s: endpoint pair (%d, %d) out of range", path, u, v)
		}
		uPort, vPort, ok := s.topo.PortOf(u, v)
		if !ok {
			return fmt.Errorf("ISL state file %s: satellites %d and %d are not adjacent", path, u, v)
		}
		banned[u][uPort] = 1
		banned[v][vPort] = 1
	}
	return nil
}

func (s *Simulation) loadCurBanned() error {
	structs.ClearBans(s.world.CurBanned)
	return s.readISLState(s.curTime, s.world.CurBanned)
}

// loadFutrBanned unions the ISL states over the upcoming update period,
// clipped to the end of the run.
func (s *Simulation) loadFutrBanned() error {
	structs.ClearBans(s.world.FutrBanned)
	end := s.cfg.Timing.StartTime + s.cfg.Timing.Duration
	for t := s.curTime; t < s.curTime+s.cfg.Timing.UpdatePeriod && t < end; t += s.cfg.Timing.StepLength {
		if err := s.readISLState(t, s.world.FutrBanned); err != nil {
			return err
		}
	}
	return nil
}

// readVectors fills n rows of width floats from a whitespace-separated
// file.
func readVectors(path string, n, width int, set func(row int, vals []float64)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	vals := make([]float64, width)
	for row := 0; row < n; row++ {
		for i := 0; i < width; i++ {
			if !scanner.Scan() {
				return fmt.Errorf("%s: unexpected end of file at row %d", path, row)
			}
			v, err := strconv.ParseFloat(scanner.Text(), 64)
			if err != nil {
				return fmt.Errorf("%s: bad value at row %d: %w", path, row, err)
			}
			vals[i] = v
		}
		set(row, vals)
	}
	return scanner.Err()
}

func (s *Simulation) loadSatPos() error {
	path := filepath.Join(s.cfg.Paths.SatPositionDir, fmt.Sprintf("%d.csv", s.curTime))
	return readVectors(path, s.topo.N, 3, func(row int, vals []float64) {
		copy(s.world.SatPos[row][:], vals)
	})
}

func (s *Simulation) loadSatLLA() error {
	if s.cfg.Paths.SatLLADir == "" {
		return nil
	}
	path := filepath.Join(s.cfg.Paths.SatLLADir, fmt.Sprintf("%d.csv", s.curTime))
	return readVectors(path, s.topo.N, 3, func(row int, vals []float64) {
		copy(s.world.SatLLA[row][:], vals)
	})
}

func (s *Simulation) loadSatVel() error {
	if s.cfg.Paths.SatVelocityDir == "" {
		return nil
	}
	path := filepath.Join(s.cfg.Paths.SatVelocityDir, fmt.Sprintf("%d.csv", s.curTime))
	return readVectors(path, s.topo.N, 1, func(row int, vals []float64) {
		s.world.SatVel[row] = vals[0]
	})
}
