package proc

import "errors"

var (
	// ErrNoConfigHz indicates that /proc/config.gz had no CONFIG_HZ line.
	ErrNoConfigHz = errors.New("proc: no CONFIG_HZ in kernel config")

	// ErrNoUptime indicates that /proc/uptime was empty or malformed.
	ErrNoUptime = errors.New("proc: malformed or empty uptime")

	// ErrNoJiffies indicates that /proc/timer_list had no jiffies line.
	ErrNoJiffies = errors.New("proc: no jiffies line in timer_list")

	// ErrNoBoottimeClock indicates that no ktime_get_boottime clock base was
	// found in /proc/timer_list. There is no fallback clock basis, so this is
	// fatal to the whole process.
	ErrNoBoottimeClock = errors.New("proc: no boottime clock base in timer_list")

	// ErrNoBtime indicates that /proc/stat had no btime line.
	ErrNoBtime = errors.New("proc: no btime line in stat")
)
