// Package proc reads the kernel-exposed counters needed to estimate the
// effective tick frequency of a running Linux kernel (see pkg/hz).
//
// Readers:
//
//   - ReadConfigHz: CONFIG_HZ from /proc/config.gz, read once at startup.
//
//   - Snapshot: one paired read of /proc/uptime and /proc/timer_list,
//     returning (uptime seconds, raw jiffies). /proc/timer_list reports
//     jiffies raw, while almost everything else under /proc reports
//     jiffies/HZ — that is what makes the estimation possible.
//
//   - BoottimeOffset: the CLOCK_BOOTTIME base offset from /proc/timer_list.
//     Unlike the monotonic clock behind /proc/uptime, this offset moves on
//     every suspend/resume, which pkg/hz uses to recalibrate.
//
//   - BootEpoch: btime from /proc/stat, wall-clock seconds of the current
//     boot.
//
// Each reader has a Parse* counterpart taking an io.Reader, so the text
// handling is testable with synthetic procfs content.
//
// Errors (errs.go) are sentinels matched with errors.Is:
//
//	ErrNoConfigHz      : no CONFIG_HZ line (kernel without CONFIG_IKCONFIG_PROC)
//	ErrNoUptime        : malformed /proc/uptime
//	ErrNoJiffies       : no jiffies line in /proc/timer_list
//	ErrNoBoottimeClock : no ktime_get_boottime base (fatal, no fallback)
//	ErrNoBtime         : no btime line in /proc/stat
package proc
