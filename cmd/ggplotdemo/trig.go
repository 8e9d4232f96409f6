package main

import (
	"iter"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot/chart"
	"github.com/gogpu/ggplot/config"
	"github.com/gogpu/ggplot/coord"
	"github.com/gogpu/ggplot/element"
	"github.com/gogpu/ggplot/series"
	"github.com/gogpu/ggplot/style"
)

type fpoint = coord.Point[float64, float64]

// trigLayout is the layout used without a configuration file.
func trigLayout() *config.Chart {
	cfg := config.Default()
	cfg.Caption.Text = "sin(x) and exp(x)"
	cfg.LabelAreas.Right = 60
	cfg.Mesh.XDesc = "x"
	cfg.Mesh.YDesc = "sin(x)"
	return cfg
}

func newTrigCmd(g *globals) *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "trig",
		Short: "Plot sin(x) with exp(x) on secondary axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrig(cmd, g, samples)
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 200, "Number of samples per curve")
	return cmd
}

// sample yields n+1 points of f evenly spaced over [lo, hi].
func sample(lo, hi float64, n int, f func(float64) float64) iter.Seq[fpoint] {
	return func(yield func(fpoint) bool) {
		for i := 0; i <= n; i++ {
			x := lo + (hi-lo)*float64(i)/float64(n)
			if !yield(coord.Pt(x, f(x))) {
				return
			}
		}
	}
}

func swatch(c style.RGBA) chart.LegendFunc {
	return func(at coord.BackendCoord) element.Drawable[coord.BackendCoord] {
		return element.NewRectangle(at.Sub(coord.BC(5, 5)), at.Add(coord.BC(5, 5)), c.Filled())
	}
}

func runTrig(cmd *cobra.Command, g *globals, samples int) error {
	if samples < 1 {
		samples = 1
	}
	tag, err := g.language()
	if err != nil {
		return err
	}
	cfg, err := g.chartConfig(trigLayout())
	if err != nil {
		return err
	}
	s, err := g.openSurface(cmd, cfg)
	if err != nil {
		return err
	}

	const xMax = 10.0
	c, err := chart.Build(cfg.ApplyLayout(chart.NewBuilder(s.root)),
		coord.NewFloat64Range(0, xMax), coord.NewFloat64Range(-1.2, 1.2))
	if err != nil {
		_ = s.close()
		return err
	}
	d := chart.SetSecondaryCoord(c, coord.NewFloat64Range(0, xMax), coord.NewFloat64Range(0, math.Exp(xMax)))

	draw := func() error {
		mesh := config.ApplyMesh(cfg, d.ConfigureMesh()).
			XLabelFormatter(chart.NumberFormatter[float64](tag, 1)).
			YLabelFormatter(chart.NumberFormatter[float64](tag, 2))
		if err := mesh.Draw(); err != nil {
			return err
		}
		secondary := d.ConfigureSecondaryAxes().
			YLabelFormatter(chart.NumberFormatter[float64](tag, 0)).
			YDesc("exp(x)")
		if cfg.Mesh.LabelSize > 0 {
			secondary.LabelStyle(cfg.LabelStyle())
		}
		if err := secondary.Draw(); err != nil {
			return err
		}

		sinColor, expColor := style.PaletteColor(0), style.PaletteColor(1)
		h, err := d.DrawSeries(series.Line(sample(0, xMax, samples, math.Sin), sinColor.Stroke().WithStrokeWidth(2)))
		if err != nil {
			return err
		}
		h.Label("sin(x)").Legend(swatch(sinColor))
		if _, err := d.DrawSeries(series.Circles(sample(0, xMax, 10, math.Sin), 3, sinColor.Filled())); err != nil {
			return err
		}
		h, err = d.DrawSecondarySeries(series.Line(sample(0, xMax, samples, math.Exp), expColor.Stroke().WithStrokeWidth(2)))
		if err != nil {
			return err
		}
		h.Label("exp(x)").Legend(swatch(expColor))

		legend, ok := cfg.ApplyLegend(d.ConfigureSeriesLabels())
		if !ok {
			return nil
		}
		return legend.
			BackgroundStyle(style.White.Mix(0.8)).
			BorderStyle(style.Black.Stroke()).
			Draw()
	}
	if err := draw(); err != nil {
		_ = s.close()
		return err
	}
	return s.finish()
}
