package hz

import "math"

// OffsetSource returns the current boottime clock base offset in seconds
// (proc.BoottimeOffset in production).
type OffsetSource func() (float64, error)

// OffsetTracker keeps (uptime - offset) continuous across suspend/resume.
// /proc/uptime follows the monotonic clock, which pauses during suspend; the
// boottime clock base offset absorbs the pause, so re-reading it after a
// jump restores continuity.
type OffsetTracker struct {
	source        OffsetSource
	offset        float64
	lastCorrected float64
}

// NewOffsetTracker reads the initial offset from source. A source failure is
// fatal: there is no fallback clock basis.
func NewOffsetTracker(source OffsetSource) (*OffsetTracker, error) {
	off, err := source()
	if err != nil {
		return nil, err
	}
	// lastCorrected is seeded with the offset itself; with no suspend before
	// startup the offset is near zero, so the first sample resyncs once and
	// establishes continuity from there.
	return &OffsetTracker{source: source, offset: off, lastCorrected: off}, nil
}

// Track corrects one raw uptime reading. When the corrected value jumps more
// than jumpThreshold from the previous one, the correction is undone, a
// fresh offset is read, and the correction is redone with it — recomputing
// without first reverting would double-count the stale offset.
func (t *OffsetTracker) Track(rawUptime float64) (corrected float64, recalibrated bool, err error) {
	corrected = rawUptime - t.offset

	if math.Abs(corrected-t.lastCorrected) > jumpThreshold {
		raw := corrected + t.offset
		off, err := t.source()
		if err != nil {
			return 0, false, err
		}
		t.offset = off
		corrected = raw - off
		recalibrated = true
	}

	t.lastCorrected = corrected
	return corrected, recalibrated, nil
}

// Offset returns the offset currently in effect.
func (t *OffsetTracker) Offset() float64 { return t.offset }

// LastCorrected returns the corrected elapsed value of the latest sample.
func (t *OffsetTracker) LastCorrected() float64 { return t.lastCorrected }
