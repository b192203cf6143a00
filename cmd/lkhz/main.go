//go:build linux

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/skaldo/lkhz/pkg/hz"
	"github.com/skaldo/lkhz/pkg/system/proc"
)

type opts struct {
	interval time.Duration
	window   int
	warmup   int
	samples  int
	csvPath  string
	pretty   bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "lkhz",
		Short: "Estimate the effective tick frequency of the running kernel",
		Long: `lkhz continuously estimates the effective HZ value of the running Linux
kernel by comparing the raw jiffies counter from /proc/timer_list against
/proc/uptime. The estimate survives suspend/resume: whenever the elapsed
time source jumps, the boottime clock offset is re-read and the correction
recalibrated.

Reading /proc/timer_list usually requires root.

Examples:
  lkhz
  lkhz --interval 50ms --samples 1000 --csv hz.csv
  lkhz convert 4298980632`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o)
		},
	}

	root.Flags().DurationVarP(&o.interval, "interval", "i", 20*time.Millisecond, "polling interval")
	root.Flags().IntVarP(&o.window, "window", "w", 100, "rolling window capacity")
	root.Flags().IntVar(&o.warmup, "warmup", 100, "calibration samples taken before the drift baseline is captured")
	root.Flags().IntVarP(&o.samples, "samples", "s", 0, "number of post-warmup samples (0 = run until Ctrl-C)")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-cycle rows to CSV file")
	root.Flags().BoolVar(&o.pretty, "pretty", true, "redraw a live display instead of printing one line per cycle")

	root.AddCommand(convertCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	configHz, err := proc.ReadConfigHz()
	if err != nil {
		return fmt.Errorf("read CONFIG_HZ: %w", err)
	}

	est, err := hz.New(hz.Options{ConfigHz: configHz, WindowSize: o.window}, proc.BoottimeOffset)
	if err != nil {
		return err
	}

	fmt.Printf(_console, configHz, proc.ClockTicks(), o.window, o.warmup)

	// Warm-up: fill the window back to back, then capture the drift baseline.
	for i := 0; i < o.warmup; i++ {
		uptime, jiffies, err := proc.Snapshot()
		if err != nil {
			return err
		}
		if _, err := est.Step(uptime, jiffies); err != nil && !errors.Is(err, hz.ErrZeroElapsed) {
			return err
		}
	}
	baseline := est.Calibrate()

	var (
		csvW *csv.Writer
		csvF *os.File
	)
	if o.csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(o.csvPath), 0o755); err == nil {
			if f, er := os.Create(o.csvPath); er == nil {
				csvF = f
				csvW = csv.NewWriter(f)
				_ = csvW.Write([]string{
					"time", "jiffies", "elapsed_sec", "hz",
					"min", "avg", "max", "spread", "drift", "offset_sec",
				})
				csvW.Flush()
			}
		}
	}
	defer func() {
		if csvW != nil {
			csvW.Flush()
		}
		if csvF != nil {
			_ = csvF.Close()
		}
	}()

	if o.pretty {
		printHeader()
	} else {
		fmt.Println("# time, jiffies, elapsed_sec, hz, min, avg, max, spread, drift, offset_sec")
	}

	// Ctrl-C handling
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	taken := 0
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			slog.Info("interrupted")
			return nil

		case <-ticker.C:
			uptime, jiffies, err := proc.Snapshot()
			if err != nil {
				return err
			}

			s, err := est.Step(uptime, jiffies)
			if err != nil {
				if errors.Is(err, hz.ErrZeroElapsed) {
					// Elapsed time advances by the next tick; just retry.
					slog.Warn("sample error", "err", err)
					continue
				}
				return err
			}

			if o.pretty {
				printRow(s, est.UserHz(), int(time.Since(baseline.At).Seconds()))
			} else {
				printLine(s)
			}

			if csvW != nil {
				_ = csvW.Write([]string{
					time.Now().Format(time.RFC3339Nano),
					strconv.FormatUint(s.Jiffies, 10),
					fmtFloat(s.Elapsed), fmtFloat(s.Instant),
					fmtFloat(s.Min), fmtFloat(s.Avg), fmtFloat(s.Max),
					fmtFloat(s.Spread), fmtFloat(s.Drift), fmtFloat(s.Offset),
				})
				csvW.Flush()
			}

			taken++
			if o.samples > 0 && taken >= o.samples {
				fmt.Println()
				return nil
			}
		}
	}
}

func convertCmd() *cobra.Command {
	var userHz int

	c := &cobra.Command{
		Use:   "convert <jiffies>",
		Short: "Convert a raw jiffies value to a local timestamp",
		Long: `convert maps a raw jiffies value (as printed by /proc/timer_list) to a
wall-clock timestamp, undoing the counter's -300s startup bias and its
32-bit wraparound, anchored at the btime boot epoch from /proc/stat.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jiffies, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("jiffies: %w", err)
			}

			configHz, err := proc.ReadConfigHz()
			if err != nil {
				return fmt.Errorf("read CONFIG_HZ: %w", err)
			}
			uptime, _, err := proc.Snapshot()
			if err != nil {
				return err
			}
			offset, err := proc.BoottimeOffset()
			if err != nil {
				return err
			}
			epoch, err := proc.BootEpoch()
			if err != nil {
				return err
			}
			if userHz == 0 {
				userHz = proc.ClockTicks()
			}

			ts := hz.JiffiesToTime(jiffies, userHz, configHz, uptime-offset, offset, epoch)
			fmt.Println(ts.Format("2006-01-02 15:04:05.000 MST"))
			return nil
		},
	}
	c.Flags().IntVar(&userHz, "user-hz", 0, "USER_HZ for the startup bias term (default: sysconf CLK_TCK)")
	return c
}

func printHeader() {
	fmt.Println("                 seconds    calculated                                                  drift since")
	fmt.Println("  jiffies       since boot    USER_HZ       min          avg          max       spread  calibration")
	fmt.Print("\n\n\n")
	fmt.Println("run time      boottime offset")
	fmt.Print("\n")
}

// printRow rewrites the live rows in place: cursor up over the row block,
// reprint, leave the cursor below the run-time line again.
func printRow(s hz.Stats, userHz int, ageSec int) {
	fmt.Print("\x1b[4A")
	fmt.Printf("%-12d %12.2f %8d  %12.8f %12.8f %12.8f %.8f %11.8f\x1b[K\n", s.Jiffies, s.Elapsed, userHz, s.Min, s.Avg, s.Max, s.Spread, s.Drift)
	fmt.Print("\x1b[2B")
	fmt.Printf("%7ds      %14.8f\x1b[K\n", ageSec, s.Offset)
}

func printLine(s hz.Stats) {
	fmt.Printf("%s, %d, %.2f, %.8f, %.8f, %.8f, %.8f, %.8f, %.8f, %.8f\n",
		time.Now().Format(time.RFC3339), s.Jiffies, s.Elapsed, s.Instant,
		s.Min, s.Avg, s.Max, s.Spread, s.Drift, s.Offset)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

const _console = `lkhz - Linux kernel tick frequency estimator

       CONFIG_HZ: %d (from /proc/config.gz)
       USER_HZ:   %d (sysconf CLK_TCK)
       window:    %d samples
       warmup:    %d samples

`
