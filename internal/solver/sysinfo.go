package solver

import (
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"quantum-logistics-router/internal/models"
)

var (
	sysInfoOnce sync.Once
	sysInfo     models.SysInfo
)

// systemInfo probes the host once and reuses the snapshot. Solve timings
// are only meaningful relative to the hardware they ran on, so every result
// carries this.
func systemInfo() models.SysInfo {
	sysInfoOnce.Do(func() {
		if hostStat, err := host.Info(); err == nil {
			sysInfo.Platform = hostStat.Platform
		}
		if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
			sysInfo.CPU = cpuStat[0].ModelName
		}
		if vmStat, err := mem.VirtualMemory(); err == nil {
			sysInfo.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
		}
	})
	return sysInfo
}
