package coord

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Float64Range is a continuous linear axis over float64 values.
// Start may be greater than End, which produces a reversed axis.
type Float64Range struct {
	start, end float64
}

// NewFloat64Range returns a linear axis covering [start, end].
func NewFloat64Range(start, end float64) Float64Range {
	return Float64Range{start: start, end: end}
}

func (r Float64Range) linear() scale.Linear {
	return scale.Linear{Min: r.start, Max: r.end}
}

func (r Float64Range) fraction(v float64) float64 {
	if r.start == r.end {
		return 0
	}
	return r.linear().Map(v)
}

// Map implements Ranged.
func (r Float64Range) Map(v float64, limit [2]int) int {
	return mapFraction(r.fraction(v), limit)
}

// Unmap implements ReversibleRanged.
func (r Float64Range) Unmap(p int, limit [2]int) (float64, bool) {
	f, ok := unmapFraction(p, limit)
	if !ok {
		return 0, false
	}
	if r.start == r.end {
		return r.start, true
	}
	return r.linear().Unmap(f), true
}

// KeyPoints implements Ranged with power-of-ten tick steps.
func (r Float64Range) KeyPoints(max int) []float64 {
	lo, hi := math.Min(r.start, r.end), math.Max(r.start, r.end)
	return linearTicks(lo, hi, scale.TickOptions{Max: max})
}

// Range implements Ranged.
func (r Float64Range) Range() Range[float64] {
	return Range[float64]{Start: r.start, End: r.end}
}

// Format implements Formatter.
func (r Float64Range) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Int64Range is a linear axis over integer values. Its key points are
// never fractional.
type Int64Range struct {
	start, end int64
}

// NewInt64Range returns an integer axis covering [start, end].
func NewInt64Range(start, end int64) Int64Range {
	return Int64Range{start: start, end: end}
}

// Map implements Ranged.
func (r Int64Range) Map(v int64, limit [2]int) int {
	if r.start == r.end {
		return mapFraction(0, limit)
	}
	return mapFraction(float64(v-r.start)/float64(r.end-r.start), limit)
}

// Unmap implements ReversibleRanged. The result is rounded to the
// nearest integer.
func (r Int64Range) Unmap(p int, limit [2]int) (int64, bool) {
	f, ok := unmapFraction(p, limit)
	if !ok {
		return 0, false
	}
	return r.start + int64(math.Round(f*float64(r.end-r.start))), true
}

// KeyPoints implements Ranged.
func (r Int64Range) KeyPoints(max int) []int64 {
	lo, hi := min(r.start, r.end), max64(r.start, r.end)
	ticks := linearTicks(float64(lo), float64(hi), scale.TickOptions{Max: max, MinLevel: 0, MaxLevel: 1000})
	out := make([]int64, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, int64(math.Round(t)))
	}
	return out
}

// Range implements Ranged.
func (r Int64Range) Range() Range[int64] {
	return Range[int64]{Start: r.start, End: r.end}
}

// Format implements Formatter.
func (r Int64Range) Format(v int64) string {
	return strconv.FormatInt(v, 10)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// linearTicks returns the major ticks of [lo, hi] that satisfy o,
// dropping any that fall outside the interval.
func linearTicks(lo, hi float64, o scale.TickOptions) []float64 {
	if o.Max <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	major, _ := scale.Linear{Min: lo, Max: hi}.Ticks(o)
	eps := (hi - lo) * 1e-9
	out := major[:0]
	for _, t := range major {
		if t >= lo-eps && t <= hi+eps {
			out = append(out, t)
		}
	}
	return out
}
