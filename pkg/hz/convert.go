package hz

import (
	"math"
	"time"
)

// EpochSource returns the system boot time as wall-clock epoch seconds
// (proc.BootEpoch in production).
type EpochSource func() (int64, error)

// JiffiesToTime converts a raw jiffies value to a local-timezone timestamp.
//
// The startup bias is undone with userHz rather than configHz, and the
// wraparound trigger compares elapsed+offset — the live uncorrected uptime —
// against the bias window, not the sample's own corrected elapsed value.
// Both asymmetries with the estimator's adjustment are intentional and must
// not be unified: doing so would shift wraparound timing by up to one
// offset's worth of seconds.
func JiffiesToTime(jiffies uint64, userHz, configHz int, elapsed, offset float64, epochSec int64) time.Time {
	adj := int64(jiffies) + int64(biasSeconds*userHz)
	if elapsed+offset > biasSeconds {
		adj -= wrapRange
	}

	sinceBoot := float64(adj) / float64(configHz)
	sec := int64(math.Floor(sinceBoot))
	nsec := int64(math.Round((sinceBoot - float64(sec)) * 1e9))

	return time.Unix(epochSec+sec, nsec)
}
