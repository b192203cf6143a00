package proc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timerListFixture = `Timer List Version: v0.10
HRTIMER_MAX_CLOCK_BASES: 8
now at 16130136604034 nsecs

cpu: 0
 clock 0:
  .base:       ffff93a2bbd1b3c0
  .index:      0
  .resolution: 1 nsecs
  .get_time:   ktime_get
  .offset:     0 nsecs
 clock 1:
  .base:       ffff93a2bbd1b400
  .index:      1
  .resolution: 1 nsecs
  .get_time:   ktime_get_real
  .offset:     1755000000123456789 nsecs
 clock 2:
  .base:       ffff93a2bbd1b440
  .index:      7
  .resolution: 1 nsecs
  .get_time:   ktime_get_boottime
  .offset:     16967908000000 nsecs
active timers:
jiffies: 4298980632
`

func TestParseConfigHz(t *testing.T) {
	cfg := `#
# Timers subsystem
#
CONFIG_TICK_ONESHOT=y
CONFIG_NO_HZ_COMMON=y
# CONFIG_HZ_PERIODIC is not set
CONFIG_HZ_250=y
# CONFIG_HZ_1000 is not set
CONFIG_HZ=250
CONFIG_SCHED_HRTICK=y
`
	v, err := ParseConfigHz(strings.NewReader(cfg))
	require.NoError(t, err)
	assert.Equal(t, 250, v)
}

func TestParseConfigHz_Missing(t *testing.T) {
	_, err := ParseConfigHz(strings.NewReader("CONFIG_HZ_250=y\nCONFIG_NO_HZ=y\n"))
	require.ErrorIs(t, err, ErrNoConfigHz)

	_, err = ParseConfigHz(strings.NewReader("CONFIG_HZ=banana\n"))
	require.ErrorIs(t, err, ErrNoConfigHz)
}

func TestParseSnapshot(t *testing.T) {
	up, jiffies, err := ParseSnapshot(strings.NewReader("16129.93 516833.56\n" + timerListFixture))
	require.NoError(t, err)
	assert.InDelta(t, 16129.93, up, 1e-9)
	assert.Equal(t, uint64(4298980632), jiffies)
}

func TestParseSnapshot_Malformed(t *testing.T) {
	_, _, err := ParseSnapshot(strings.NewReader(""))
	require.ErrorIs(t, err, ErrNoUptime)

	_, _, err = ParseSnapshot(strings.NewReader("not-a-number 1.0\njiffies: 5\n"))
	require.ErrorIs(t, err, ErrNoUptime)

	_, _, err = ParseSnapshot(strings.NewReader("16129.93 516833.56\nno timer list here\n"))
	require.ErrorIs(t, err, ErrNoJiffies)
}

func TestParseBoottimeOffset(t *testing.T) {
	off, err := ParseBoottimeOffset(strings.NewReader(timerListFixture))
	require.NoError(t, err)
	assert.InDelta(t, 16967.908, off, 1e-9)
}

func TestParseBoottimeOffset_PicksFirstBoottimeBase(t *testing.T) {
	// Per-CPU bases repeat; the first (CPU 0) instance wins.
	two := timerListFixture + `
cpu: 1
 clock 2:
  .base:       ffff93a2bbd5b440
  .index:      7
  .resolution: 1 nsecs
  .get_time:   ktime_get_boottime
  .offset:     99999999000000 nsecs
`
	off, err := ParseBoottimeOffset(strings.NewReader(two))
	require.NoError(t, err)
	assert.InDelta(t, 16967.908, off, 1e-9)
}

func TestParseBoottimeOffset_Missing(t *testing.T) {
	noBoottime := `cpu: 0
 clock 0:
  .get_time:   ktime_get
  .offset:     0 nsecs
`
	_, err := ParseBoottimeOffset(strings.NewReader(noBoottime))
	require.ErrorIs(t, err, ErrNoBoottimeClock)

	truncated := "  .get_time:   ktime_get_boottime\n"
	_, err = ParseBoottimeOffset(strings.NewReader(truncated))
	require.ErrorIs(t, err, ErrNoBoottimeClock)
}

func TestParseBootEpoch(t *testing.T) {
	stat := `cpu  63536 231 27123 5509674 4476 0 1908 0 0 0
cpu0 15525 59 6766 1377672 1121 0 480 0 0 0
intr 12345678 0 9
ctxt 48291042
btime 1755000000
processes 29211
procs_running 1
`
	sec, err := ParseBootEpoch(strings.NewReader(stat))
	require.NoError(t, err)
	assert.Equal(t, int64(1755000000), sec)
}

func TestParseBootEpoch_Missing(t *testing.T) {
	_, err := ParseBootEpoch(strings.NewReader("cpu 1 2 3\nctxt 5\n"))
	require.ErrorIs(t, err, ErrNoBtime)
}
