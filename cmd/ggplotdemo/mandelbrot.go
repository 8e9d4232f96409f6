package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/ggplot/chart"
	"github.com/gogpu/ggplot/config"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/style"
)

const maxIter = 100

// pointsValue is a repeatable "x,y" pixel flag.
type pointsValue []coord.BackendCoord

var _ pflag.Value = (*pointsValue)(nil)

func (v *pointsValue) String() string {
	parts := make([]string, len(*v))
	for i, p := range *v {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (v *pointsValue) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return err
	}
	*v = append(*v, coord.BC(x, y))
	return nil
}

func (v *pointsValue) Type() string {
	return "x,y"
}

// mandelbrotLayout is the layout used without a configuration file.
func mandelbrotLayout() *config.Chart {
	cfg := config.Default()
	cfg.Margin = 20
	cfg.LabelAreas = config.LabelAreas{Bottom: 10, Left: 10}
	cfg.Mesh.DisableXMesh = true
	cfg.Mesh.DisableYMesh = true
	cfg.Legend.Enabled = false
	return cfg
}

func newMandelbrotCmd(g *globals) *cobra.Command {
	var pixels pointsValue
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set and reverse-map backend pixels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMandelbrot(cmd, g, pixels)
		},
	}
	cmd.Flags().Var(&pixels, "pixel", "Backend pixel to map back to the complex plane (repeatable)")
	return cmd
}

// escapeTime returns the iterations before z = z^2 + c diverges, capped
// at maxIter.
func escapeTime(re, im float64) int {
	var zr, zi float64
	n := 0
	for n < maxIter && zr*zr+zi*zi <= 1e10 {
		zr, zi = zr*zr-zi*zi+re, 2*zr*zi+im
		n++
	}
	return n
}

func runMandelbrot(cmd *cobra.Command, g *globals, pixels []coord.BackendCoord) error {
	cfg, err := g.chartConfig(mandelbrotLayout())
	if err != nil {
		return err
	}
	s, err := g.openSurface(cmd, cfg)
	if err != nil {
		return err
	}

	c, err := chart.Build(cfg.ApplyLayout(chart.NewBuilder(s.root)),
		coord.NewFloat64Range(-2.1, 0.6), coord.NewFloat64Range(-1.2, 1.2))
	if err != nil {
		_ = s.close()
		return err
	}
	if err := config.ApplyMesh(cfg, c.ConfigureMesh()).Draw(); err != nil {
		_ = s.close()
		return err
	}

	area := c.PlottingArea()
	pw, ph := area.DimInPixel()
	xr, yr := c.XRange(), c.YRange()
	stepX := (xr.End - xr.Start) / float64(max(pw, 1))
	stepY := (yr.End - yr.Start) / float64(max(ph, 1))
	for k := range pw * ph {
		re := xr.Start + stepX*float64(k%pw)
		im := yr.Start + stepY*float64(k/pw)
		col := style.Black
		if n := escapeTime(re, im); n != maxIter {
			col = style.HSL(float64(n)/maxIter*360, 1, 0.5)
		}
		if err := area.DrawPixel(coord.Pt(re, im), col); err != nil {
			_ = s.close()
			return err
		}
	}
	if err := s.finish(); err != nil {
		return err
	}

	trans := c.IntoCoordTrans()
	for _, p := range pixels {
		if v, ok := trans(p); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "(%d, %d) -> %.6f%+.6fi\n", p.X, p.Y, v.X, v.Y)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "(%d, %d) -> outside the plotting area\n", p.X, p.Y)
		}
	}
	return nil
}
