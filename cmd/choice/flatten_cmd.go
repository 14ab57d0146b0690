package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/output"
	"github.com/raphi011/choice/internal/ui/static"
)

// entryJSON is the --json shape of one flattened row.
type entryJSON struct {
	Row      int    `json:"row"`
	Depth    int    `json:"depth"`
	ID       string `json:"id"`
	Label    string `json:"label"`
	Group    bool   `json:"group"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
}

func newFlattenCmd() *cobra.Command {
	var (
		flags  treeFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "flatten <file|->",
		Short:   "Print the display rows of an option file",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Print the rows a prompt would show for an option file: every option in
pre-order, children indented below their group. The ROW column is the
position used by activations.`,
		Example: `  choice flatten fruit.toml
  choice flatten --json fruit.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			out := output.FromContext(cmd.Context())

			file, err := loadTree(cmd, args[0], flags.format)
			if err != nil {
				return err
			}
			entries := choice.Flatten(file.Options)

			if asJSON {
				rows := make([]entryJSON, len(entries))
				for i, e := range entries {
					rows[i] = entryJSON{
						Row:      i,
						Depth:    e.Depth,
						ID:       e.Option.ID,
						Label:    e.Option.Label,
						Group:    e.Group,
						Disabled: e.Option.Disabled,
						Selected: e.Option.Selected,
					}
				}
				return out.JSON(rows)
			}

			out.Print(static.RenderTable(static.EntryHeaders, static.EntryRows(entries, cfg.Indent)))
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rows as JSON")

	return cmd
}
