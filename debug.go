package nest

import "time"

// debugStats holds per-tick timings. Only populated when debug mode is on.
type debugStats struct {
	updateTime  time.Duration
	eventTime   time.Duration
	presentTime time.Duration
	eventCount  int
}

// debugSlowUpdate is the update duration above which a warning is logged.
// Callbacks run on the loop goroutine, so a slow update stalls the frame.
const debugSlowUpdate = 50 * time.Millisecond

// SetDebugMode enables or disables per-tick timing logs at debug level.
func (n *Nest) SetDebugMode(enabled bool) {
	n.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (n *Nest) DebugMode() bool {
	return n.debug
}

// debugLog reports timing stats through the package logger.
func (n *Nest) debugLog(stats debugStats) {
	if !n.debug {
		return
	}
	total := stats.updateTime + stats.eventTime + stats.presentTime
	Logger().Debug("nest: frame",
		"update", stats.updateTime,
		"events", stats.eventTime,
		"present", stats.presentTime,
		"total", total,
		"event_count", stats.eventCount)
	if stats.updateTime > debugSlowUpdate {
		Logger().Warn("nest: slow update", "update", stats.updateTime, "threshold", debugSlowUpdate)
	}
}
