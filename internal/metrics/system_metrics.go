package metrics

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	systemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "riskassess_system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
		[]string{"core"},
	)

	systemMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "riskassess_system_memory_usage_bytes",
			Help: "Current memory usage in bytes",
		},
		[]string{"type"},
	)

	goGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "riskassess_go_goroutines",
			Help: "Number of goroutines that currently exist",
		},
	)

	goHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "riskassess_go_heap_alloc_bytes",
			Help: "Heap memory usage in bytes",
		},
	)

	goHeapSys = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "riskassess_go_heap_sys_bytes",
			Help: "Heap memory reserved in bytes",
		},
	)
)

// StartSystemMetrics collects CPU, memory and Go runtime gauges on the given
// interval until the context is cancelled.
func StartSystemMetrics(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics()
				collectGoRuntimeMetrics()
			}
		}
	}()
}

func collectSystemMetrics() {
	if cpuPercentages, err := cpu.Percent(0, true); err == nil {
		for i, percentage := range cpuPercentages {
			systemCPUUsage.WithLabelValues(fmt.Sprintf("cpu%d", i)).Set(percentage)
		}
	}

	if vmstat, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.WithLabelValues("total").Set(float64(vmstat.Total))
		systemMemoryUsage.WithLabelValues("available").Set(float64(vmstat.Available))
		systemMemoryUsage.WithLabelValues("used").Set(float64(vmstat.Used))
	}
}

func collectGoRuntimeMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	goGoroutines.Set(float64(runtime.NumGoroutine()))
	goHeapAlloc.Set(float64(m.HeapAlloc))
	goHeapSys.Set(float64(m.HeapSys))
}
