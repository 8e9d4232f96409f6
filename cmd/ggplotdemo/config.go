package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggplot/config"
)

func newConfigCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Write the default chart configuration",
		Long: `config writes the default chart configuration as YAML to path, or to
stdout when no path is given. With --config the named file is validated
and written back out instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.chartConfig(config.Default())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return cfg.Save(args[0])
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
