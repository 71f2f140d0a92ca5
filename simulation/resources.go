package simulation

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	log "github.com/sirupsen/logrus"
)

// sampleResources appends a host-resource section to the report so long
// runs can be correlated with machine load afterwards.
func (s *Simulation) sampleResources() string {
	var b strings.Builder

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		fmt.Fprintf(&b, "cpu usage: %.2f\n", percents[0])
	} else if err != nil {
		log.Debugf("CPU sampling failed: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(&b, "memory used percent: %.2f\n", vm.UsedPercent)
	} else {
		log.Debugf("Memory sampling failed: %v", err)
	}

	if avg, err := load.Avg(); err == nil {
		fmt.Fprintf(&b, "load average: %.2f %.2f %.2f\n", avg.Load1, avg.Load5, avg.Load15)
	} else {
		log.Debugf("Load sampling failed: %v", err)
	}

	return b.String()
}
