package hz

// Window is a FIFO window of recent instantaneous HZ values with a
// sticky-extremes policy: once a minimum and maximum have been observed they
// are folded into every later extremes computation, so the reported spread
// never narrows. The average, in contrast, is always taken over the plain
// FIFO contents. The two views are deliberately distinct.
type Window struct {
	capacity int
	vals     []float64

	min, max    float64
	hasExtremes bool
}

// NewWindow creates a window holding at most capacity values.
func NewWindow(capacity int) *Window {
	return &Window{
		capacity: capacity,
		vals:     make([]float64, 0, capacity),
	}
}

// Push appends a value, evicting the oldest when the capacity is exceeded.
func (w *Window) Push(v float64) {
	w.vals = append(w.vals, v)
	if len(w.vals) > w.capacity {
		w.vals = w.vals[1:]
	}
}

// Len returns the current number of values in the FIFO view.
func (w *Window) Len() int { return len(w.vals) }

// Average returns the mean of the FIFO view, or 0 for an empty window.
func (w *Window) Average() float64 {
	if len(w.vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range w.vals {
		sum += v
	}
	return sum / float64(len(w.vals))
}

// Extremes returns the minimum and maximum over the FIFO view plus, once
// they exist, the previously returned extremes. The returned pair becomes
// the sticky pair for the next call.
func (w *Window) Extremes() (min, max float64) {
	if len(w.vals) == 0 {
		return 0, 0
	}
	min, max = w.vals[0], w.vals[0]
	for _, v := range w.vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if w.hasExtremes {
		if w.min < min {
			min = w.min
		}
		if w.max > max {
			max = w.max
		}
	}
	w.min, w.max = min, max
	w.hasExtremes = true
	return min, max
}
