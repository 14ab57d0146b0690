package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/config"
	"github.com/raphi011/choice/internal/log"
	"github.com/raphi011/choice/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show or create configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Print the effective configuration as TOML.

Config file: ~/.config/choice/config.toml
Environment overrides: CHOICE_MODE, CHOICE_THEME, CHOICE_INDENT, CHOICE_MAX_VISIBLE`,
		Example: `  choice config          # Show effective config
  choice config init     # Create default config file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			return configFrom(cmd).Encode(out.Writer())
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  choice config init      # Create ~/.config/choice/config.toml
  choice config init -f   # Overwrite existing config
  choice config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultFile())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("locate config: %w", err)
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
