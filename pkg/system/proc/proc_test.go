//go:build linux

package proc

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTicks(t *testing.T) {
	t.Setenv("CLK_TCK", "")
	assert.Greater(t, ClockTicks(), 0, "ClockTicks must be > 0")

	// Env override wins (use a weird-but-valid value)
	t.Setenv("CLK_TCK", "250")
	assert.Equal(t, 250, ClockTicks())
}

func TestReadConfigHz_Live(t *testing.T) {
	v, err := ReadConfigHz()
	if errors.Is(err, os.ErrNotExist) {
		t.Skip("skip: kernel built without CONFIG_IKCONFIG_PROC")
	}
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 1)
}

// requireTimerList skips the test when /proc/timer_list is unreadable
// (it is root-only on hardened kernels).
func requireTimerList(t *testing.T) {
	t.Helper()
	f, err := os.Open(timerListPath)
	if err != nil {
		t.Skipf("skip: %v", err)
	}
	_ = f.Close()
}

func TestSnapshot_Live(t *testing.T) {
	requireTimerList(t)

	up1, j1, err := Snapshot()
	require.NoError(t, err)
	assert.Greater(t, up1, 0.0)
	assert.Greater(t, j1, uint64(0))

	time.Sleep(20 * time.Millisecond)

	up2, j2, err := Snapshot()
	require.NoError(t, err)
	assert.Greater(t, up2, up1, "uptime advances between snapshots")
	assert.GreaterOrEqual(t, j2, j1, "jiffies never go backwards")
}

func TestBoottimeOffset_Live(t *testing.T) {
	requireTimerList(t)

	off, err := BoottimeOffset()
	require.NoError(t, err)
	// Zero until the first suspend; never negative.
	assert.GreaterOrEqual(t, off, 0.0)
}

func TestBootEpoch_Live(t *testing.T) {
	sec, err := BootEpoch()
	require.NoError(t, err)
	assert.Greater(t, sec, int64(0))
	assert.Less(t, sec, time.Now().Unix(), "boot happened in the past")
}
