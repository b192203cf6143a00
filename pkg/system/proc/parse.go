package proc

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseConfigHz scans uncompressed kernel config text for the first line
// matching CONFIG_HZ=<integer> and returns that integer.
func ParseConfigHz(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "CONFIG_HZ=") {
			continue
		}
		v, err := strconv.Atoi(strings.TrimPrefix(line, "CONFIG_HZ="))
		if err != nil {
			return 0, ErrNoConfigHz
		}
		return v, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, ErrNoConfigHz
}

// ParseSnapshot parses the concatenated content of /proc/uptime and
// /proc/timer_list. The first field of the first line is the uptime in
// seconds; the first line starting with "jiffies:" carries the raw jiffies
// counter.
//
// Note: /proc/timer_list repeats the jiffies line once per CPU; the values
// only differ while a CPU is mid-update, so the first instance is taken.
func ParseSnapshot(r io.Reader) (uptimeSec float64, jiffies uint64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		return 0, 0, ErrNoUptime
	}
	fs := strings.Fields(sc.Text())
	if len(fs) == 0 {
		return 0, 0, ErrNoUptime
	}
	uptimeSec, err = strconv.ParseFloat(fs[0], 64)
	if err != nil {
		return 0, 0, ErrNoUptime
	}

	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "jiffies:") {
			continue
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, "jiffies:"))
		jiffies, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, 0, ErrNoJiffies
		}
		return uptimeSec, jiffies, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, ErrNoJiffies
}

// ParseBoottimeOffset extracts the boottime clock base offset, in seconds,
// from /proc/timer_list text.
//
// The clock bases could be reordered by a kernel change, so instead of
// indexing we search for the first base whose .get_time is
// ktime_get_boottime (CPU 0 always has one; it cannot be taken offline).
// The base's ".offset: <ns> nsecs" line follows, with the nanosecond value
// in the next-to-last field. The offset changes whenever any form of
// suspend/resume occurs.
func ParseBoottimeOffset(r io.Reader) (float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	found := false
	for sc.Scan() {
		line := sc.Text()
		if !found {
			if strings.HasSuffix(line, "ktime_get_boottime") {
				found = true
			}
			continue
		}
		fs := strings.Fields(line)
		if len(fs) < 2 {
			return 0, ErrNoBoottimeClock
		}
		ns, err := strconv.ParseInt(fs[len(fs)-2], 10, 64)
		if err != nil {
			return 0, ErrNoBoottimeClock
		}
		return float64(ns) / 1e9, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, ErrNoBoottimeClock
}

// ParseBootEpoch extracts the boot epoch (btime, wall-clock seconds) from
// /proc/stat text.
func ParseBootEpoch(r io.Reader) (int64, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "btime") {
			continue
		}
		fs := strings.Fields(line)
		if len(fs) < 2 {
			return 0, ErrNoBtime
		}
		sec, err := strconv.ParseInt(fs[1], 10, 64)
		if err != nil {
			return 0, ErrNoBtime
		}
		return sec, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, ErrNoBtime
}
