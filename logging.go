package genarena

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LogState writes one debug-level line describing src to logger.
// Extra keyvals, such as an arena name, are appended to the line.
// A nil logger or source is a no-op.
func LogState(logger log.Logger, src MetricsSource, keyvals ...any) {
	if logger == nil || src == nil {
		return
	}
	m := src.Metrics()
	kv := []any{
		"msg", "arena state",
		"live", m.Live,
		"slots", m.Slots,
		"free_slots", m.FreeSlots,
		"capacity", m.Capacity,
		"utilization", m.Utilization,
		"allocs", m.Allocs,
		"reuses", m.Reuses,
		"frees", m.Frees,
	}
	level.Debug(logger).Log(append(kv, keyvals...)...)
}
