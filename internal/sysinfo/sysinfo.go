// Package sysinfo samples the local machine for the demo bar: load
// average and memory usage from /proc, plus the wall clock.
package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/dzgen/pkg/logging"
)

// Sample is one reading of everything the demo bar shows.
type Sample struct {
	Now  time.Time
	Load float64 // 1-minute load average
	Mem  float64 // used memory as a fraction of total, 0..1
}

// Collect reads a sample. Unreadable sources log at debug level and leave
// their field zero; the bar keeps running with what it has.
func Collect() Sample {
	logger := logging.GetLogger("sysinfo")
	s := Sample{Now: time.Now()}

	load, err := LoadAvg()
	if err != nil {
		logger.Debug().Err(err).Msg("load average unavailable")
	} else {
		s.Load = load
	}

	mem, err := MemoryUsed()
	if err != nil {
		logger.Debug().Err(err).Msg("memory usage unavailable")
	} else {
		s.Mem = mem
	}
	return s
}

// LoadAvg returns the 1-minute load average from /proc/loadavg.
func LoadAvg() (float64, error) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return 0, err
	}
	return parseLoadAvg(string(data))
}

// MemoryUsed returns used memory as a fraction of total, based on
// MemTotal and MemAvailable in /proc/meminfo.
func MemoryUsed() (float64, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	return parseMemInfo(string(data))
}

func parseLoadAvg(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty loadavg")
	}
	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing loadavg %q: %w", fields[0], err)
	}
	return load, nil
}

func parseMemInfo(s string) (float64, error) {
	values := map[string]float64{}
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		if key != "MemTotal" && key != "MemAvailable" {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parsing meminfo %s: %w", key, err)
		}
		values[key] = v
	}

	total, ok := values["MemTotal"]
	if !ok || total <= 0 {
		return 0, fmt.Errorf("meminfo missing MemTotal")
	}
	avail, ok := values["MemAvailable"]
	if !ok {
		return 0, fmt.Errorf("meminfo missing MemAvailable")
	}
	used := (total - avail) / total
	if used < 0 {
		used = 0
	}
	if used > 1 {
		used = 1
	}
	return used, nil
}
