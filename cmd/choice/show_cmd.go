package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/host"
	"github.com/raphi011/choice/internal/log"
	"github.com/raphi011/choice/internal/output"
	"github.com/raphi011/choice/internal/ui/prompt"
	"github.com/raphi011/choice/internal/ui/styles"
)

func newShowCmd() *cobra.Command {
	var (
		flags   treeFlags
		copyIDs bool
		asJSON  bool
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:     "show <file|->",
		Short:   "Show an interactive prompt and print the chosen ids",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Show an interactive prompt for the options in a TOML, YAML or JSON file.

The prompt renders on stderr, the chosen ids are printed to stdout one per
line, so the command works inside command substitution.

Closing the prompt (esc, ctrl+c, ←) prints the pre-selected options. The
prompt is also closed, with the same result, on SIGINT, SIGHUP or SIGTERM and when
the option file changes on disk (disable with --no-watch).`,
		Example: `  choice show fruit.toml                  # mode from the file or config
  choice show -m multiple fruit.yaml      # check several options
  ids=$(choice show menu.toml)            # capture the result
  cat menu.json | choice show --format json -
  choice show --json --copy fruit.toml    # JSON result, also on the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(cmd)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
				return fmt.Errorf("show needs a terminal on stderr; use 'choice resolve' in scripts")
			}

			file, err := loadTree(cmd, args[0], flags.format)
			if err != nil {
				return err
			}
			p, err := flags.buildPrompt(file, cfg)
			if err != nil {
				return err
			}

			styles.Init(cfg.Theme)

			// Host navigation: SIGHUP, the command context and, for real
			// files, changes to the option file dismiss the prompt.
			nav := host.Multi{
				host.Context{Ctx: ctx},
				host.NewSignals(syscall.SIGHUP),
			}
			if args[0] != "-" && cfg.Watch && !noWatch {
				watcher, err := host.WatchFile(args[0], func(err error) {
					l.Printf("Warning: watch %s: %v\n", args[0], err)
				})
				if err != nil {
					l.Printf("Warning: not watching %s: %v\n", args[0], err)
				} else {
					defer watcher.Close()
					nav = append(nav, watcher)
				}
			}

			ctrl := choice.New(func(ids []string) {
				l.Debug("result delivered", "ids", strings.Join(ids, ","))
			}).WithNavigator(nav)

			if err := ctrl.Show(ctx, p); err != nil {
				return err
			}
			if err := prompt.Run(ctrl, prompt.Options{Indent: cfg.Indent, MaxVisible: cfg.MaxVisible}); err != nil {
				return fmt.Errorf("run prompt: %w", err)
			}

			if copyIDs || cfg.Copy {
				ids, _ := ctrl.Result()
				if err := clipboard.WriteAll(strings.Join(ids, "\n")); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			return printResult(out, ctrl, asJSON)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&copyIDs, "copy", false, "Copy the chosen ids to the clipboard")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Keep the prompt open when the option file changes")

	return cmd
}
