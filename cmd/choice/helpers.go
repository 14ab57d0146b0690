package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/config"
	"github.com/raphi011/choice/internal/output"
	"github.com/raphi011/choice/internal/tree"
)

// treeFlags are the option-file flags shared by show, resolve and flatten.
type treeFlags struct {
	format  string
	mode    string
	title   string
	message string
}

func (f *treeFlags) register(cmd *cobra.Command, withPrompt bool) {
	cmd.Flags().StringVar(&f.format, "format", "", "Option file format: toml, yaml or json (default: from extension)")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{string(tree.FormatTOML), string(tree.FormatYAML), string(tree.FormatJSON)},
		cobra.ShellCompDirectiveNoFileComp,
	))
	if !withPrompt {
		return
	}
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Selection mode: single, menu or multiple")
	cmd.RegisterFlagCompletionFunc("mode", cobra.FixedCompletions(config.ValidModes, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().StringVar(&f.title, "title", "", "Override the prompt title")
	cmd.Flags().StringVar(&f.message, "message", "", "Override the prompt message")
}

// loadTree reads the option file at path; "-" reads stdin and needs an
// explicit format.
func loadTree(cmd *cobra.Command, path, format string) (*tree.File, error) {
	var f tree.Format
	if format != "" {
		parsed, err := tree.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	}

	var (
		file *tree.File
		err  error
	)
	if path == "-" {
		if f == "" {
			return nil, fmt.Errorf("reading options from stdin requires --format")
		}
		file, err = tree.Read(cmd.InOrStdin(), f)
	} else {
		file, err = tree.Load(path, f)
	}
	if err != nil {
		return nil, err
	}

	if err := tree.Validate(file.Options); err != nil {
		return nil, fmt.Errorf("invalid option file: %w", err)
	}
	return file, nil
}

// buildPrompt applies flag overrides on top of the option file. The mode
// precedence is --mode, the file's mode, then the configured default.
func (f *treeFlags) buildPrompt(file *tree.File, cfg *config.Config) (choice.Prompt, error) {
	if f.mode != "" {
		file.Mode = f.mode
	}
	p, err := file.Prompt(cfg.DefaultMode())
	if err != nil {
		return choice.Prompt{}, err
	}
	if f.title != "" {
		p.Title = f.title
	}
	if f.message != "" {
		p.Message = f.message
	}
	return p, nil
}

// configFrom returns the config attached to the command context, or the
// defaults.
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg := config.FromContext(cmd.Context()); cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

// resultJSON is the --json shape of a prompt result.
type resultJSON struct {
	ID      string   `json:"id"`
	Outcome string   `json:"outcome"`
	IDs     []string `json:"ids"`
}

// printResult writes ids one per line, or a JSON object.
func printResult(out *output.Printer, ctrl *choice.Controller, asJSON bool) error {
	ids, _ := ctrl.Result()
	if asJSON {
		outcome, _ := ctrl.Outcome()
		return out.JSON(resultJSON{ID: ctrl.ID(), Outcome: outcome.String(), IDs: ids})
	}
	out.Lines(ids)
	return nil
}
