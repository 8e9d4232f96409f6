// Command ggplotdemo renders demonstration charts with ggplot.
//
//	ggplotdemo mandelbrot -o mandelbrot.png --pixel 400,300
//	ggplotdemo trig --backend svg -o trig.svg --locale de
//	ggplotdemo config > chart.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/backend"
	_ "github.com/gogpu/ggplot/backend/bitmap"
	_ "github.com/gogpu/ggplot/backend/svg"
	"github.com/gogpu/ggplot/config"
	"github.com/gogpu/ggplot/drawing"
	"github.com/gogpu/ggplot/style"
)

// globals holds the flags shared by all chart commands.
type globals struct {
	output     string
	backend    string
	configPath string
	width      int
	height     int
	verbose    bool
	locale     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "ggplotdemo",
		Short: "Render demonstration charts",
		Long: `ggplotdemo renders example charts through the ggplot layout engine
to PNG or SVG files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				ggplot.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.output, "output", "o", "", "Output file path, - for stdout (default: <command>.<backend>)")
	pf.StringVar(&g.backend, "backend", "", "Output backend: png or svg (default from config)")
	pf.StringVar(&g.configPath, "config", "", "YAML chart configuration file")
	pf.IntVar(&g.width, "width", 0, "Image width in pixels (default from config)")
	pf.IntVar(&g.height, "height", 0, "Image height in pixels (default from config)")
	pf.BoolVar(&g.verbose, "verbose", false, "Log layout decisions to stderr")
	pf.StringVar(&g.locale, "locale", "en", "BCP 47 locale of tick labels")

	root.AddCommand(newMandelbrotCmd(g), newTrigCmd(g), newConfigCmd(g))
	return root
}

// chartConfig loads the configuration file, or base when none is given,
// and applies the size and backend flags.
func (g *globals) chartConfig(base *config.Chart) (*config.Chart, error) {
	cfg := base
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}
	if g.width > 0 {
		cfg.Width = g.width
	}
	if g.height > 0 {
		cfg.Height = g.height
	}
	if g.backend != "" {
		cfg.Backend = g.backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (g *globals) language() (language.Tag, error) {
	tag, err := language.Parse(g.locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", g.locale, err)
	}
	return tag, nil
}

// surface is an open output plus the root drawing area covering it.
type surface struct {
	root  *drawing.Area
	close func() error
	path  string
}

// openSurface opens the configured backend writing to the output file,
// and clears it to white.
func (g *globals) openSurface(cmd *cobra.Command, cfg *config.Chart) (*surface, error) {
	path := g.output
	if path == "" {
		path = cmd.Name() + "." + cfg.Backend
	}

	var (
		w      io.Writer
		closer = func() error { return nil }
	)
	if path == "-" {
		w = cmd.OutOrStdout()
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create output: %w", err)
		}
		w, closer = f, f.Close
	}

	b, err := backend.Open(cfg.Backend, w, cfg.Width, cfg.Height)
	if err != nil {
		_ = closer()
		return nil, err
	}
	root := drawing.NewArea(b)
	if err := root.Fill(style.White); err != nil {
		_ = closer()
		return nil, err
	}
	return &surface{root: root, close: closer, path: path}, nil
}

// finish presents the surface and closes the output.
func (s *surface) finish() error {
	if err := s.root.Present(); err != nil {
		_ = s.close()
		return err
	}
	if err := s.close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	ggplot.Logger().Info("chart written", "path", s.path)
	return nil
}
