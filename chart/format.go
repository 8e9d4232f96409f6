package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number is the set of value types NumberFormatter accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberFormatter returns a tick label formatter that renders values in
// the conventions of tag, with at most digits fraction digits:
//
//	mesh.YLabelFormatter(chart.NumberFormatter[float64](language.German, 2))
//
// renders 1234.5 as "1.234,5".
func NumberFormatter[T Number](tag language.Tag, digits int) func(T) string {
	p := message.NewPrinter(tag)
	return func(v T) string {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
	}
}
