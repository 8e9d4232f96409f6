package coord

import (
	"math"
	"sort"
	"testing"
	"time"
)

func TestFloat64RangeMap(t *testing.T) {
	r := NewFloat64Range(0, 10)
	tests := []struct {
		name  string
		v     float64
		limit [2]int
		want  int
	}{
		{"start", 0, [2]int{0, 100}, 0},
		{"end", 10, [2]int{0, 100}, 100},
		{"middle", 5, [2]int{0, 100}, 50},
		{"reversed limit start", 0, [2]int{100, 0}, 100},
		{"reversed limit end", 10, [2]int{100, 0}, 0},
		{"extrapolate below", -5, [2]int{0, 100}, -50},
		{"extrapolate above", 20, [2]int{0, 100}, 200},
		{"degenerate pixels", 3, [2]int{40, 40}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Map(tt.v, tt.limit); got != tt.want {
				t.Errorf("Map(%v, %v) = %d, want %d", tt.v, tt.limit, got, tt.want)
			}
		})
	}
}

func TestFloat64RangeRoundTrip(t *testing.T) {
	limits := [][2]int{{30, 380}, {270, 20}, {0, 7}}
	r := NewFloat64Range(-2.1, 0.6)
	for _, limit := range limits {
		pixel := math.Abs(2.7 / float64(limit[1]-limit[0]))
		for i := 0; i <= 100; i++ {
			v := -2.1 + 2.7*float64(i)/100
			got, ok := r.Unmap(r.Map(v, limit), limit)
			if !ok {
				t.Fatalf("Unmap(Map(%v)) over %v not ok", v, limit)
			}
			if math.Abs(got-v) > pixel+1e-9 {
				t.Errorf("round trip of %v over %v = %v, off by more than one pixel (%v)", v, limit, got, pixel)
			}
		}
	}
}

func TestFloat64RangeUnmapOutside(t *testing.T) {
	r := NewFloat64Range(0, 1)
	for _, p := range []int{-1, 101} {
		if _, ok := r.Unmap(p, [2]int{0, 100}); ok {
			t.Errorf("Unmap(%d) should report false outside the pixel interval", p)
		}
	}
	if _, ok := r.Unmap(5, [2]int{5, 5}); ok {
		t.Error("Unmap over a degenerate interval should report false")
	}
}

func checkTicks(t *testing.T, ticks []float64, lo, hi float64, max int) {
	t.Helper()
	if len(ticks) == 0 {
		t.Fatal("no ticks returned")
	}
	if len(ticks) > max {
		t.Errorf("got %d ticks, want at most %d", len(ticks), max)
	}
	if !sort.Float64sAreSorted(ticks) {
		t.Errorf("ticks not sorted: %v", ticks)
	}
	for _, v := range ticks {
		if v < lo-1e-9 || v > hi+1e-9 {
			t.Errorf("tick %v outside [%v, %v]", v, lo, hi)
		}
	}
}

func TestFloat64RangeKeyPoints(t *testing.T) {
	tests := []struct {
		lo, hi float64
		max    int
	}{
		{0, 10, 10},
		{-2.1, 0.6, 10},
		{-1.2, 1.2, 5},
		{0, 1e6, 3},
		{10, 0, 10},
	}
	for _, tt := range tests {
		r := NewFloat64Range(tt.lo, tt.hi)
		checkTicks(t, r.KeyPoints(tt.max), math.Min(tt.lo, tt.hi), math.Max(tt.lo, tt.hi), tt.max)
	}
	if got := NewFloat64Range(0, 1).KeyPoints(0); got != nil {
		t.Errorf("KeyPoints(0) = %v, want nil", got)
	}
	if got := NewFloat64Range(3, 3).KeyPoints(4); len(got) != 1 || got[0] != 3 {
		t.Errorf("degenerate KeyPoints = %v, want [3]", got)
	}
}

func TestInt64Range(t *testing.T) {
	r := NewInt64Range(0, 5)
	got := r.KeyPoints(100)
	want := []int64{0, 1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("KeyPoints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("KeyPoints = %v, want %v", got, want)
		}
	}
	if p := r.Map(5, [2]int{0, 50}); p != 50 {
		t.Errorf("Map(5) = %d, want 50", p)
	}
	if v, ok := r.Unmap(19, [2]int{0, 50}); !ok || v != 2 {
		t.Errorf("Unmap(19) = %d, %v, want 2, true", v, ok)
	}
	if s := r.Format(42); s != "42" {
		t.Errorf("Format(42) = %q", s)
	}
}

func TestCategory(t *testing.T) {
	c := NewCategory("a", "b", "c", "b")
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (duplicates dropped)", c.Len())
	}
	limit := [2]int{0, 300}
	if p := c.Map("b", limit); p != 150 {
		t.Errorf("Map(b) = %d, want 150", p)
	}
	if p := c.Map("zzz", limit); p != 0 {
		t.Errorf("Map(unknown) = %d, want 0", p)
	}
	tests := []struct {
		p    int
		want string
		ok   bool
	}{
		{10, "a", true},
		{150, "b", true},
		{300, "c", true},
		{301, "", false},
	}
	for _, tt := range tests {
		got, ok := c.Unmap(tt.p, limit)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Unmap(%d) = %q, %v, want %q, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
	if kp := c.KeyPoints(2); len(kp) != 2 || kp[0] != "a" || kp[1] != "c" {
		t.Errorf("KeyPoints(2) = %v, want [a c]", kp)
	}
	if r := c.Range(); r.Start != "a" || r.End != "c" {
		t.Errorf("Range() = %v", r)
	}
}

func TestTimeRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := NewTimeRange(start, start.Add(6*time.Hour))

	kp := r.KeyPoints(10)
	if len(kp) != 7 {
		t.Fatalf("KeyPoints(10) returned %d ticks, want 7 hourly ticks: %v", len(kp), kp)
	}
	for i, tick := range kp {
		if want := start.Add(time.Duration(i) * time.Hour); !tick.Equal(want) {
			t.Errorf("tick %d = %v, want %v", i, tick, want)
		}
	}

	limit := [2]int{0, 600}
	mid := start.Add(3 * time.Hour)
	if p := r.Map(mid, limit); p != 300 {
		t.Errorf("Map(mid) = %d, want 300", p)
	}
	back, ok := r.Unmap(300, limit)
	if !ok || !back.Equal(mid) {
		t.Errorf("Unmap(300) = %v, %v, want %v", back, ok, mid)
	}
	if s := r.Format(mid); s != "03:00" {
		t.Errorf("Format(mid) = %q, want 03:00", s)
	}
}

func TestTimeTickerLevels(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tk := timeTicker{lo: start, hi: start.Add(90 * time.Minute)}
	for level := range timeSteps {
		n := len(tk.TicksAtLevel(level).([]float64))
		if c := tk.CountTicks(level); c < n {
			t.Errorf("level %d: CountTicks = %d, below the %d ticks produced", level, c, n)
		}
	}
	kp := NewTimeRange(start, start.Add(90*time.Minute)).KeyPoints(4)
	if len(kp) == 0 || len(kp) > 4 {
		t.Errorf("KeyPoints(4) = %v", kp)
	}
}

func TestShift(t *testing.T) {
	s := Shift(BC(10, 20))
	if got := s.Translate(BC(1, 2)); got != BC(11, 22) {
		t.Errorf("Translate = %v", got)
	}
	if got, ok := s.ReverseTranslate(BC(11, 22)); !ok || got != BC(1, 2) {
		t.Errorf("ReverseTranslate = %v, %v", got, ok)
	}
}

// pixelOnly is an axis without a reverse mapping.
type pixelOnly struct{}

func (pixelOnly) Map(v int, limit [2]int) int { return limit[0] + v }
func (pixelOnly) KeyPoints(int) []int         { return nil }
func (pixelOnly) Range() Range[int]           { return Range[int]{} }

func TestCartesian2D(t *testing.T) {
	// Plotting region 30..380 x 20..270 with inverted Y.
	spec := NewCartesian2D[float64, float64](
		NewFloat64Range(-2.1, 0.6), NewFloat64Range(-1.2, 1.2),
		[2]int{30, 380}, [2]int{270, 20})

	if got := spec.Translate(Pt(-2.1, 1.2)); got != BC(30, 20) {
		t.Errorf("top-left corner = %v, want (30, 20)", got)
	}
	if got := spec.Translate(Pt(0.6, -1.2)); got != BC(380, 270) {
		t.Errorf("bottom-right corner = %v, want (380, 270)", got)
	}

	p, ok := spec.ReverseTranslate(BC(30, 20))
	if !ok || math.Abs(p.X+2.1) > 1e-9 || math.Abs(p.Y-1.2) > 1e-9 {
		t.Errorf("ReverseTranslate(30, 20) = %v, %v", p, ok)
	}
	if _, ok := spec.ReverseTranslate(BC(0, 0)); ok {
		t.Error("ReverseTranslate outside the plotting region should report false")
	}

	noRev := NewCartesian2D[int, float64](pixelOnly{}, NewFloat64Range(0, 1), [2]int{0, 10}, [2]int{10, 0})
	if _, ok := noRev.ReverseTranslate(BC(5, 5)); ok {
		t.Error("ReverseTranslate with a non-reversible axis should report false")
	}
}

func TestCartesian2DDrawMesh(t *testing.T) {
	spec := NewCartesian2D[int64, int64](NewInt64Range(0, 4), NewInt64Range(0, 2), [2]int{0, 40}, [2]int{20, 0})

	var xs, ys []int
	err := spec.DrawMesh(10, 10, func(l MeshLine[int64, int64]) error {
		switch l.Kind {
		case XMesh:
			if l.From.Y != 20 || l.To.Y != 0 {
				t.Errorf("x mesh line spans %v..%v", l.From, l.To)
			}
			xs = append(xs, l.Pixel())
		case YMesh:
			ys = append(ys, l.Pixel())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 5 || xs[0] != 0 || xs[4] != 40 {
		t.Errorf("x mesh pixels = %v", xs)
	}
	if len(ys) != 3 || ys[0] != 20 || ys[2] != 0 {
		t.Errorf("y mesh pixels = %v", ys)
	}
}
