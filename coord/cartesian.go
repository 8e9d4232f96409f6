package coord

// MeshKind tells whether a mesh line is drawn for an X or a Y key point.
type MeshKind int

const (
	// XMesh is a vertical line at an X key point.
	XMesh MeshKind = iota
	// YMesh is a horizontal line at a Y key point.
	YMesh
)

// MeshLine is one grid line produced by Cartesian2D.DrawMesh.
// X is set for XMesh lines and Y for YMesh lines.
type MeshLine[X, Y any] struct {
	Kind     MeshKind
	From, To BackendCoord
	X        X
	Y        Y
}

// Pixel returns the pixel position of the line along its axis.
func (l MeshLine[X, Y]) Pixel() int {
	if l.Kind == XMesh {
		return l.From.X
	}
	return l.From.Y
}

// Cartesian2D is the coordinate spec of a rectangular chart: a pair of
// axis descriptors together with the pixel intervals they map onto.
// It is immutable once built.
type Cartesian2D[X, Y any] struct {
	x     Ranged[X]
	y     Ranged[Y]
	backX [2]int
	backY [2]int
}

// NewCartesian2D combines two axis descriptors with the pixel intervals
// of the plotting region. backY is normally inverted (bottom first) so
// that data Y grows upward.
func NewCartesian2D[X, Y any](x Ranged[X], y Ranged[Y], backX, backY [2]int) *Cartesian2D[X, Y] {
	return &Cartesian2D[X, Y]{x: x, y: y, backX: backX, backY: backY}
}

// Translate implements Translator.
func (c *Cartesian2D[X, Y]) Translate(p Point[X, Y]) BackendCoord {
	return BackendCoord{X: c.x.Map(p.X, c.backX), Y: c.y.Map(p.Y, c.backY)}
}

// ReverseTranslate implements ReverseTranslator. It reports false when
// either axis is not reversible or the pixel is outside the plotting
// interval of either axis.
func (c *Cartesian2D[X, Y]) ReverseTranslate(p BackendCoord) (Point[X, Y], bool) {
	var out Point[X, Y]
	rx, ok := c.x.(ReversibleRanged[X])
	if !ok {
		return out, false
	}
	ry, ok := c.y.(ReversibleRanged[Y])
	if !ok {
		return out, false
	}
	if out.X, ok = rx.Unmap(p.X, c.backX); !ok {
		return out, false
	}
	if out.Y, ok = ry.Unmap(p.Y, c.backY); !ok {
		return out, false
	}
	return out, true
}

// XRange returns the X domain.
func (c *Cartesian2D[X, Y]) XRange() Range[X] { return c.x.Range() }

// YRange returns the Y domain.
func (c *Cartesian2D[X, Y]) YRange() Range[Y] { return c.y.Range() }

// XDesc returns the X axis descriptor.
func (c *Cartesian2D[X, Y]) XDesc() Ranged[X] { return c.x }

// YDesc returns the Y axis descriptor.
func (c *Cartesian2D[X, Y]) YDesc() Ranged[Y] { return c.y }

// XPixelRange returns the pixel interval of the X axis.
func (c *Cartesian2D[X, Y]) XPixelRange() [2]int { return c.backX }

// YPixelRange returns the pixel interval of the Y axis, inverted when
// the coordinate system was built for an upward-growing Y.
func (c *Cartesian2D[X, Y]) YPixelRange() [2]int { return c.backY }

// DrawMesh calls fn for each vertical line at the X key points (at most
// vLimit of them), then for each horizontal line at the Y key points (at
// most hLimit). The first error returned by fn stops the iteration.
func (c *Cartesian2D[X, Y]) DrawMesh(hLimit, vLimit int, fn func(MeshLine[X, Y]) error) error {
	for _, xv := range c.x.KeyPoints(vLimit) {
		px := c.x.Map(xv, c.backX)
		line := MeshLine[X, Y]{
			Kind: XMesh,
			From: BackendCoord{X: px, Y: c.backY[0]},
			To:   BackendCoord{X: px, Y: c.backY[1]},
			X:    xv,
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	for _, yv := range c.y.KeyPoints(hLimit) {
		py := c.y.Map(yv, c.backY)
		line := MeshLine[X, Y]{
			Kind: YMesh,
			From: BackendCoord{X: c.backX[0], Y: py},
			To:   BackendCoord{X: c.backX[1], Y: py},
			Y:    yv,
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}
