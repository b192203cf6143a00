//go:build linux

package proc

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"strconv"

	"github.com/tklauser/go-sysconf"
)

const (
	configGzPath  = "/proc/config.gz"
	uptimePath    = "/proc/uptime"
	timerListPath = "/proc/timer_list"
	statPath      = "/proc/stat"
)

// ClockTicks returns the number of clock ticks per second visible to
// userspace (USER_HZ). It first checks the env var CLK_TCK (useful for
// testing), then sysconf(_SC_CLK_TCK), otherwise falls back to 100.
func ClockTicks() int {
	if v, _ := strconv.Atoi(os.Getenv("CLK_TCK")); v > 0 {
		return v
	}
	if v, err := sysconf.Sysconf(sysconf.SC_CLK_TCK); err == nil && v > 0 {
		return int(v)
	}
	return 100
}

// ReadConfigHz reads the kernel's compile-time CONFIG_HZ from
// /proc/config.gz. Requires CONFIG_IKCONFIG_PROC in the running kernel.
func ReadConfigHz() (int, error) {
	f, err := os.Open(configGzPath)
	if err != nil {
		return 0, fmt.Errorf("proc: open %s: %w", configGzPath, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("proc: gunzip %s: %w", configGzPath, err)
	}
	defer zr.Close()

	return ParseConfigHz(zr)
}

// Snapshot reads /proc/uptime and /proc/timer_list back to back and returns
// the uptime in seconds together with the raw jiffies counter. The two reads
// happen inside this one call so the skew between them stays below
// measurement noise; callers must not split them.
func Snapshot() (uptimeSec float64, jiffies uint64, err error) {
	up, err := os.ReadFile(uptimePath)
	if err != nil {
		return 0, 0, fmt.Errorf("proc: read %s: %w", uptimePath, err)
	}
	tl, err := os.ReadFile(timerListPath)
	if err != nil {
		return 0, 0, fmt.Errorf("proc: read %s: %w", timerListPath, err)
	}
	return ParseSnapshot(bytes.NewReader(append(up, tl...)))
}

// BoottimeOffset reads the current CLOCK_BOOTTIME base offset, in seconds,
// from /proc/timer_list.
func BoottimeOffset() (float64, error) {
	f, err := os.Open(timerListPath)
	if err != nil {
		return 0, fmt.Errorf("proc: open %s: %w", timerListPath, err)
	}
	defer f.Close()
	return ParseBoottimeOffset(f)
}

// BootEpoch reads the system boot time (btime) from /proc/stat as wall-clock
// epoch seconds.
func BootEpoch() (int64, error) {
	f, err := os.Open(statPath)
	if err != nil {
		return 0, fmt.Errorf("proc: open %s: %w", statPath, err)
	}
	defer f.Close()
	return ParseBootEpoch(f)
}
