package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/log"
	"github.com/raphi011/choice/internal/output"
)

// validOutcomes are the --outcome values of resolve.
var validOutcomes = []string{"confirm", "cancel", "dismiss"}

func newResolveCmd() *cobra.Command {
	var (
		flags    treeFlags
		activate []string
		outcome  string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "resolve <file|->",
		Short:   "Compute a prompt result without a terminal",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Run the selection engine non-interactively.

Each --activate id is applied in order, as if the user clicked that row.
In single and menu mode the first activation of a selectable row ends the
prompt; later activations are ignored. The prompt then ends with --outcome:

  confirm   commit the checked rows (multiple mode; closes otherwise)
  cancel    close the prompt, result is the pre-selected options
  dismiss   host navigated away, result is the pre-selected options

A confirm without any checked row also yields the pre-selected options.`,
		Example: `  choice resolve -m multiple --activate a,b1 fruit.toml
  choice resolve -m single --activate b1 fruit.toml
  choice resolve --outcome cancel fruit.toml     # print the defaults
  choice resolve --json --activate a fruit.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(cmd)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			file, err := loadTree(cmd, args[0], flags.format)
			if err != nil {
				return err
			}
			p, err := flags.buildPrompt(file, cfg)
			if err != nil {
				return err
			}

			ctrl := choice.New(nil)
			if err := ctrl.Show(ctx, p); err != nil {
				return err
			}
			if err := resolve(ctrl, activate, outcome); err != nil {
				return err
			}
			o, _ := ctrl.Outcome()
			l.Debug("resolved", "requested", outcome, "outcome", o)

			return printResult(out, ctrl, asJSON)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringSliceVarP(&activate, "activate", "a", nil, "Option ids to activate, in order")
	cmd.Flags().StringVarP(&outcome, "outcome", "o", "confirm", "How the prompt ends: confirm, cancel or dismiss")
	cmd.RegisterFlagCompletionFunc("outcome", cobra.FixedCompletions(validOutcomes, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// resolve replays activations by id and terminates ctrl with outcome.
// An exclusive prompt that saw no pick has nothing to confirm, so a
// confirm closes it like cancel.
func resolve(ctrl *choice.Controller, activate []string, outcome string) error {
	switch outcome {
	case "confirm", "cancel", "dismiss":
	default:
		return fmt.Errorf("invalid outcome %q: must be %q, %q, or %q", outcome, "confirm", "cancel", "dismiss")
	}

	entries := ctrl.Entries()
	for _, id := range activate {
		row := choice.RowOf(entries, id)
		if row < 0 {
			return fmt.Errorf("unknown option id %q", id)
		}
		if err := ctrl.Activate(row); err != nil {
			return fmt.Errorf("activate %q: %w", id, err)
		}
	}

	switch outcome {
	case "confirm":
		ctrl.Confirm()
		ctrl.Cancel() // no-op unless the prompt is exclusive and unpicked
	case "cancel":
		ctrl.Cancel()
	case "dismiss":
		ctrl.Dismiss()
	}
	return nil
}
