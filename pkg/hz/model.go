package hz

import (
	"math"
	"time"
)

const (
	// biasSeconds is the fixed startup bias of the jiffies counter: it is
	// initialized 300 seconds' worth of ticks below its wrap point and runs
	// through the full 32-bit range.
	biasSeconds = 300

	// wrapRange is the span of the 32-bit jiffies counter. The counter
	// appears 64-bit in /proc but is maintained as two 32-bit halves.
	wrapRange = int64(1) << 32

	// jumpThreshold is the discontinuity tolerance in seconds. Polling
	// jitter stays well under it; a suspend/resume jump is orders of
	// magnitude larger.
	jumpThreshold = 1.0

	// userHzStep is the granularity USER_HZ is reported at. Kernels ship
	// with CONFIG_HZ of 50, 100, 250, 300 or 1000, all multiples of 50.
	userHzStep = 50
)

// Options configure an Estimator.
type Options struct {
	// ConfigHz is the kernel's compile-time CONFIG_HZ. Read once at startup;
	// never re-read.
	ConfigHz int

	// WindowSize is the rolling window capacity. Defaults to 100.
	WindowSize int
}

// Stats is the outcome of one estimation step.
type Stats struct {
	Jiffies uint64  // raw counter value of this sample
	Elapsed float64 // corrected seconds since boot
	Instant float64 // instantaneous HZ estimate
	Min     float64 // sticky-extremes window minimum
	Avg     float64 // rolling window average
	Max     float64 // sticky-extremes window maximum
	Spread  float64 // Max - Min
	Drift   float64 // Avg minus the calibration baseline; 0 before calibration
	Offset  float64 // boottime offset in effect for this sample

	// Recalibrated reports whether this sample triggered an offset
	// recalibration (suspend/resume detected).
	Recalibrated bool
}

// Baseline is the long-run drift reference, captured once after warm-up.
type Baseline struct {
	Average float64
	At      time.Time
}

// round8 rounds to 8 decimal digits, the resolution all published estimates
// are reported at.
func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

// UserHz snaps a noisy HZ estimate down to the conventional USER_HZ
// granularity. The +2 margin counters the slight upward bias the raw
// estimate shows in practice.
func UserHz(estimate float64) int {
	return int(math.Floor((estimate+2)/userHzStep)) * userHzStep
}
