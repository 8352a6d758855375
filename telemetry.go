package parsefloat

import "sync/atomic"

// StrategyStats is a snapshot of how many ParseFloat/CreateFloat calls
// resolved via each strategy since the last ResetStats, per spec §9's
// supplemented telemetry feature: a natural extension of the teacher's own
// Accuracy introspection, useful for asserting strategy coverage in tests
// and for profiling which path a workload's inputs actually exercise.
type StrategyStats struct {
	FastPath     uint64
	ModeratePath uint64
	SlowPath     uint64
}

type strategy int

const (
	strategyFast strategy = iota
	strategyModerate
	strategySlow
)

var (
	fastCount     atomic.Uint64
	moderateCount atomic.Uint64
	slowCount     atomic.Uint64
)

func recordResolved(s strategy) {
	switch s {
	case strategyFast:
		fastCount.Add(1)
	case strategyModerate:
		moderateCount.Add(1)
	case strategySlow:
		slowCount.Add(1)
	}
}

// Stats returns the strategy-resolution counts accumulated so far. Safe
// for concurrent use with any number of ParseFloat/CreateFloat calls.
func Stats() StrategyStats {
	return StrategyStats{
		FastPath:     fastCount.Load(),
		ModeratePath: moderateCount.Load(),
		SlowPath:     slowCount.Load(),
	}
}

// ResetStats zeroes the strategy-resolution counters.
func ResetStats() {
	fastCount.Store(0)
	moderateCount.Store(0)
	slowCount.Store(0)
}
