// Package hz estimates the effective tick frequency (HZ) of a running Linux
// kernel by comparing the raw jiffies counter against uptime, and converts
// raw jiffies values to calendar timestamps.
//
// The package is pure logic: all kernel I/O is injected (OffsetSource,
// EpochSource, and the (uptime, jiffies) pairs fed to Estimator.Step), so
// the whole estimation pipeline is testable with synthetic samples. See
// pkg/system/proc for the production sources.
//
// An Estimator is driven by a single synchronous polling loop, one Step per
// cycle; it is not safe for concurrent use.
package hz
