package middleware

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/chocolatedesue/satnet/structs"
)

// LoadConfig reads the TOML configuration file and applies the timing
// defaults: update_period falls back to the run duration, refresh_period
// to update_period.
func LoadConfig(path string) (*structs.Config, error) {
	var cfg structs.Config
	// Get absolute path for clearer error messages if file not found
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error getting absolute path for %s: %w", path, err)
	}

	log.Infof("Attempting to load configuration from: %s", absPath)

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding TOML file %s: %w", path, err)
	}

	if cfg.Timing.UpdatePeriod == 0 {
		cfg.Timing.UpdatePeriod = cfg.Timing.Duration
	}
	if cfg.Timing.RefreshPeriod == 0 {
		cfg.Timing.RefreshPeriod = cfg.Timing.UpdatePeriod
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig rejects configurations the simulator cannot run:
// non-positive grid dimensions, timing that would never advance the epoch
// loop, or an empty algorithm name or observer_config_path. Whether the
// observer file exists is checked when it is loaded, not here.
func ValidateConfig(cfg *structs.Config) error {
	if cfg.Constellation.Planes <= 0 || cfg.Constellation.SatsPerPlane <= 0 {
		return fmt.Errorf("invalid constellation: num_of_orbit_planes=%d, num_of_satellites_per_plane=%d",
			cfg.Constellation.Planes, cfg.Constellation.SatsPerPlane)
	}
	if cfg.Timing.StepLength <= 0 {
		return fmt.Errorf("invalid timing: step_length=%d must be positive", cfg.Timing.StepLength)
	}
	if cfg.Timing.Duration <= 0 {
		return fmt.Errorf("invalid timing: duration=%d must be positive", cfg.Timing.Duration)
	}
	if cfg.Algorithm.Name == "" {
		return fmt.Errorf("no algorithm name in configuration")
	}
	if cfg.Paths.ObserverConfig == "" {
		return fmt.Errorf("no observer_config_path in configuration")
	}
	return nil
}

// LoadObservers reads the observer list: a count followed by that many
// whitespace-separated "src dst" pairs. Pairs are normalized so that
// src <= dst.
func LoadObservers(path string, n int) ([]structs.Observer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("observer config file not found: %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count int
	if _, err := fmt.Fscan(r, &count); err != nil {
		return nil, fmt.Errorf("error reading observer count from %s: %w", path, err)
	}

	observers := make([]structs.Observer, 0, count)
	for i := 0; i < count; i++ {
		var src, dst int
		if _, err := fmt.Fscan(r, &src, &dst); err != nil {
			return nil, fmt.Errorf("error reading observer %d from %s: %w", i, path, err)
		}
		if src < 0 || src >= n || dst < 0 || dst >= n {
			return nil, fmt.Errorf("observer %d (%d, %d) out of range [0, %d)", i, src, dst, n)
		}
		if src > dst {
			src, dst = dst, src
		}
		observers = append(observers, structs.Observer{Src: src, Dst: dst})
	}
	return observers, nil
}
