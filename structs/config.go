package structs

// Config holds the overall configuration structure mapping to satnet_config.toml
type Config struct {
	Name          string              `toml:"name"`
	Constellation ConstellationConfig `toml:"constellation"`
	ISLLatency    ISLLatencyConfig    `toml:"isl_latency"`
	Domain        DomainConfig        `toml:"domain"`
	Timing        TimingConfig        `toml:"timing"`
	Paths         PathsConfig         `toml:"paths"`
	Algorithm     AlgorithmConfig     `toml:"algorithm"`
	DumpRIBNodes  []int               `toml:"dump_rib_nodes,omitempty"`
}

// ConstellationConfig describes the Walker-Delta grid
type ConstellationConfig struct {
	Planes          int `toml:"num_of_orbit_planes"`
	SatsPerPlane    int `toml:"num_of_satellites_per_plane"`
	RelativeSpacing int `toml:"relative_spacing"`
}

// ISLLatencyConfig holds the per-hop delay model constants
type ISLLatencyConfig struct {
	ProcessingDelay      float64 `toml:"processing_delay"`       // ms
	PropagationDelayCoef float64 `toml:"propagation_delay_coef"` //
	PropagationSpeed     float64 `toml:"propagation_speed"`      // km/ms
}

// DomainConfig is the (Kp, Kn) decomposition used by the domain heuristic
type DomainConfig struct {
	Kp int `toml:"kp,omitempty"`
	Kn int `toml:"kn,omitempty"`
}

// TimingConfig drives the epoch loop. UpdatePeriod and RefreshPeriod
// default to Duration and UpdatePeriod respectively when omitted.
type TimingConfig struct {
	StartTime     int `toml:"start_time,omitempty"`
	StepLength    int `toml:"step_length"`
	Duration      int `toml:"duration"`
	UpdatePeriod  int `toml:"update_period,omitempty"`
	RefreshPeriod int `toml:"refresh_period,omitempty"`
}

// PathsConfig locates the per-epoch input files and the report output
type PathsConfig struct {
	ISLStateDir    string `toml:"isl_state_dir"`
	SatPositionDir string `toml:"sat_position_dir"`
	SatLLADir      string `toml:"sat_lla_dir,omitempty"`
	SatVelocityDir string `toml:"sat_velocity_dir,omitempty"`
	ReportDir      string `toml:"report_dir"`
	ObserverConfig string `toml:"observer_config_path"`
}

// AlgorithmConfig selects the routing variant by registry name
type AlgorithmConfig struct {
	Name          string `toml:"name"`
	MaxRecurseCnt int    `toml:"max_recurse_cnt,omitempty"`
}
