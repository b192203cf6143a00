package hz

import "time"

// Estimator derives the effective tick frequency from successive
// (uptime, jiffies) samples. It owns all mutable estimation state; callers
// drive it from a single polling loop, one Step per cycle.
type Estimator struct {
	configHz int
	tracker  *OffsetTracker
	window   *Window
	baseline *Baseline
}

// New creates an Estimator. The initial boottime offset is read from source
// immediately.
func New(opts Options, source OffsetSource) (*Estimator, error) {
	if opts.ConfigHz < 1 {
		return nil, ErrBadConfigHz
	}
	size := opts.WindowSize
	if size == 0 {
		size = 100
	}
	if size < 1 {
		return nil, ErrBadWindow
	}
	tracker, err := NewOffsetTracker(source)
	if err != nil {
		return nil, err
	}
	return &Estimator{
		configHz: opts.ConfigHz,
		tracker:  tracker,
		window:   NewWindow(size),
	}, nil
}

// adjustJiffies undoes the counter's startup bias and, once more than
// biasSeconds of corrected elapsed time have passed, its 32-bit wraparound.
// A one-time step, not a repeating modulo: the process runs within a single
// uptime epoch per calibration, so multi-wrap correction is out of scope.
func adjustJiffies(raw uint64, hzValue int, elapsed float64) int64 {
	adj := int64(raw) + int64(biasSeconds*hzValue)
	if elapsed > biasSeconds {
		adj -= wrapRange
	}
	return adj
}

// Step folds one sample into the estimator and returns the resulting
// statistics. A zero corrected elapsed time yields ErrZeroElapsed and leaves
// the window untouched; an offset source failure is returned as-is and is
// fatal.
func (e *Estimator) Step(uptimeSec float64, jiffies uint64) (Stats, error) {
	corrected, recalibrated, err := e.tracker.Track(uptimeSec)
	if err != nil {
		return Stats{}, err
	}
	if corrected == 0 {
		return Stats{}, ErrZeroElapsed
	}

	adjusted := adjustJiffies(jiffies, e.configHz, corrected)
	instant := round8(float64(adjusted) / corrected)

	e.window.Push(instant)
	avg := round8(e.window.Average())
	min, max := e.window.Extremes()
	min, max = round8(min), round8(max)

	s := Stats{
		Jiffies:      jiffies,
		Elapsed:      corrected,
		Instant:      instant,
		Min:          min,
		Avg:          avg,
		Max:          max,
		Spread:       max - min,
		Offset:       e.tracker.Offset(),
		Recalibrated: recalibrated,
	}
	if e.baseline != nil {
		s.Drift = avg - e.baseline.Average
	}
	return s, nil
}

// Calibrate captures the drift baseline from the current window average.
// Call it once, after the warm-up samples have been stepped through.
func (e *Estimator) Calibrate() Baseline {
	b := Baseline{Average: round8(e.window.Average()), At: time.Now()}
	e.baseline = &b
	return b
}

// Baseline returns the calibration baseline, or nil before Calibrate.
func (e *Estimator) Baseline() *Baseline { return e.baseline }

// Average returns the current rolling window average.
func (e *Estimator) Average() float64 { return round8(e.window.Average()) }

// UserHz returns the USER_HZ classification of the current average, or 0
// before the first sample.
func (e *Estimator) UserHz() int {
	if e.window.Len() == 0 {
		return 0
	}
	return UserHz(e.window.Average())
}

// Timestamp converts a raw jiffies value to a wall-clock timestamp using the
// estimator's live offset state and USER_HZ classification. epoch supplies
// the boot time (proc.BootEpoch in production); its error — typically
// proc.ErrNoBtime — fails this call only, not the estimator.
func (e *Estimator) Timestamp(jiffies uint64, epoch EpochSource) (time.Time, error) {
	btime, err := epoch()
	if err != nil {
		return time.Time{}, err
	}
	return JiffiesToTime(jiffies, e.UserHz(), e.configHz,
		e.tracker.LastCorrected(), e.tracker.Offset(), btime), nil
}
