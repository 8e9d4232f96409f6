package coord

import (
	"fmt"
	"math"
)

// Category is a discrete axis. Each value owns an equal-width segment
// of the pixel interval and maps onto the segment's center.
type Category[T comparable] struct {
	values []T
	index  map[T]int
}

// NewCategory returns a discrete axis over values, in the given order.
// Duplicate values keep their first position.
func NewCategory[T comparable](values ...T) *Category[T] {
	c := &Category[T]{index: make(map[T]int, len(values))}
	for _, v := range values {
		if _, dup := c.index[v]; dup {
			continue
		}
		c.index[v] = len(c.values)
		c.values = append(c.values, v)
	}
	return c
}

// Len returns the number of categories.
func (c *Category[T]) Len() int {
	return len(c.values)
}

// Map implements Ranged. Values that are not part of the axis map onto
// the start of the pixel interval.
func (c *Category[T]) Map(v T, limit [2]int) int {
	idx, ok := c.index[v]
	if !ok || len(c.values) == 0 {
		return limit[0]
	}
	return mapFraction((float64(idx)+0.5)/float64(len(c.values)), limit)
}

// Unmap implements ReversibleRanged, returning the category whose
// segment contains p.
func (c *Category[T]) Unmap(p int, limit [2]int) (T, bool) {
	var zero T
	if len(c.values) == 0 {
		return zero, false
	}
	f, ok := unmapFraction(p, limit)
	if !ok {
		return zero, false
	}
	idx := int(math.Floor(f * float64(len(c.values))))
	idx = min(max(idx, 0), len(c.values)-1)
	return c.values[idx], true
}

// KeyPoints implements Ranged. When there are more categories than max,
// every n-th category is returned.
func (c *Category[T]) KeyPoints(limit int) []T {
	if limit <= 0 || len(c.values) == 0 {
		return nil
	}
	stride := (len(c.values) + limit - 1) / limit
	out := make([]T, 0, limit)
	for i := 0; i < len(c.values); i += stride {
		out = append(out, c.values[i])
	}
	return out
}

// Range implements Ranged.
func (c *Category[T]) Range() Range[T] {
	if len(c.values) == 0 {
		return Range[T]{}
	}
	return Range[T]{Start: c.values[0], End: c.values[len(c.values)-1]}
}

// Format implements Formatter.
func (c *Category[T]) Format(v T) string {
	return fmt.Sprint(v)
}
