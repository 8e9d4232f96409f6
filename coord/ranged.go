package coord

import "math"

// Ranged describes one axis: a domain of values of type V that can be
// projected onto a pixel interval.
type Ranged[V any] interface {
	// Map projects v onto the pixel interval limit. limit may be
	// reversed (limit[0] > limit[1]). Values outside the domain
	// extrapolate instead of failing.
	Map(v V, limit [2]int) int

	// KeyPoints returns at most max values suitable for mesh lines
	// and tick labels, in increasing order.
	KeyPoints(max int) []V

	// Range returns the domain covered by the axis.
	Range() Range[V]
}

// ReversibleRanged is a Ranged descriptor that can map pixels back into
// its domain. Unmap reports false when p lies outside limit or the
// pixel interval is degenerate.
type ReversibleRanged[V any] interface {
	Ranged[V]
	Unmap(p int, limit [2]int) (V, bool)
}

// Formatter is implemented by descriptors that know how to render their
// own values as tick labels.
type Formatter[V any] interface {
	Format(v V) string
}

// mapFraction projects the fraction f of the domain onto limit.
// A zero-length pixel interval collapses onto limit[1].
func mapFraction(f float64, limit [2]int) int {
	span := limit[1] - limit[0]
	if span == 0 {
		return limit[1]
	}
	return limit[0] + int(math.Floor(float64(span)*f+1e-3))
}

// unmapFraction is the inverse of mapFraction for pixels inside limit.
func unmapFraction(p int, limit [2]int) (float64, bool) {
	span := limit[1] - limit[0]
	if span == 0 {
		return 0, false
	}
	if p < min(limit[0], limit[1]) || p > max(limit[0], limit[1]) {
		return 0, false
	}
	return float64(p-limit[0]) / float64(span), true
}
