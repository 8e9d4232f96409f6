package coord

import (
	"time"

	"github.com/aclements/go-moremath/scale"
)

// timeSteps is the ladder of tick spacings a TimeRange chooses from.
// Level i of the tick search corresponds to timeSteps[i].
var timeSteps = []time.Duration{
	time.Second, 2 * time.Second, 5 * time.Second, 10 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 2 * time.Minute, 5 * time.Minute, 10 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 2 * time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 2 * 24 * time.Hour, 7 * 24 * time.Hour, 14 * 24 * time.Hour,
	30 * 24 * time.Hour, 90 * 24 * time.Hour, 365 * 24 * time.Hour,
}

// TimeRange is a continuous axis over time.Time values.
type TimeRange struct {
	start, end time.Time
}

// NewTimeRange returns a time axis covering [start, end].
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{start: start, end: end}
}

func (r TimeRange) span() time.Duration {
	return r.end.Sub(r.start)
}

// Map implements Ranged.
func (r TimeRange) Map(v time.Time, limit [2]int) int {
	span := r.span()
	if span == 0 {
		return mapFraction(0, limit)
	}
	return mapFraction(float64(v.Sub(r.start))/float64(span), limit)
}

// Unmap implements ReversibleRanged.
func (r TimeRange) Unmap(p int, limit [2]int) (time.Time, bool) {
	f, ok := unmapFraction(p, limit)
	if !ok {
		return time.Time{}, false
	}
	return r.start.Add(time.Duration(f * float64(r.span()))), true
}

// KeyPoints implements Ranged. Ticks are aligned to multiples of the
// chosen step in the location of the range start.
func (r TimeRange) KeyPoints(max int) []time.Time {
	lo, hi := r.start, r.end
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if max <= 0 {
		return nil
	}
	if lo.Equal(hi) {
		return []time.Time{lo}
	}

	t := timeTicker{lo: lo, hi: hi}
	o := scale.TickOptions{Max: max, MinLevel: 0, MaxLevel: len(timeSteps) - 1}
	level, ok := o.FindLevel(t, 0)
	if !ok {
		return []time.Time{lo, hi}
	}
	return t.ticksAt(level)
}

// timeTicker adapts the timeSteps ladder over [lo, hi] to scale.Ticker.
type timeTicker struct {
	lo, hi time.Time
}

func (t timeTicker) ticksAt(level int) []time.Time {
	step := timeSteps[level]
	first := alignTime(t.lo, step)
	if first.Before(t.lo) {
		first = first.Add(step)
	}
	var out []time.Time
	for v := first; !v.After(t.hi); v = v.Add(step) {
		out = append(out, v)
	}
	return out
}

// CountTicks implements scale.Ticker.
func (t timeTicker) CountTicks(level int) int {
	step := timeSteps[level]
	return int(t.hi.Sub(alignTime(t.lo, step))/step) + 1
}

// TicksAtLevel implements scale.Ticker with ticks as Unix nanoseconds.
func (t timeTicker) TicksAtLevel(level int) interface{} {
	ts := t.ticksAt(level)
	fs := make([]float64, len(ts))
	for i, v := range ts {
		fs[i] = float64(v.UnixNano())
	}
	return fs
}

// alignTime rounds t down to a multiple of step. Steps of a day or more
// align to local midnight.
func alignTime(t time.Time, step time.Duration) time.Time {
	if step < 24*time.Hour {
		return t.Truncate(step)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Range implements Ranged.
func (r TimeRange) Range() Range[time.Time] {
	return Range[time.Time]{Start: r.start, End: r.end}
}

// Format implements Formatter, choosing a layout from the axis span.
func (r TimeRange) Format(v time.Time) string {
	span := r.span()
	if span < 0 {
		span = -span
	}
	switch {
	case span < 10*time.Minute:
		return v.Format("15:04:05")
	case span < 48*time.Hour:
		return v.Format("15:04")
	case span < 180*24*time.Hour:
		return v.Format("Jan 02")
	default:
		return v.Format("2006-01")
	}
}
