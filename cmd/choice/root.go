package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/choice/internal/config"
	"github.com/raphi011/choice/internal/log"
	"github.com/raphi011/choice/internal/output"
	"github.com/raphi011/choice/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupPrompt = "prompt"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "choice",
	Short: "Interactive choice prompts for shell scripts",
	Long: `choice shows a list of options, possibly nested into groups, and prints
the identifiers the user picked.

Single mode picks one option, menu mode picks one action, multiple mode
checks any number of options and confirms them. Closing the prompt prints
the options marked as pre-selected.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Logger needs the parsed flags, so it is attached here rather than in Execute.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// printError reports a command error with a help hint. Colors are
// downsampled to what w supports.
func printError(w io.Writer, err error) {
	lipgloss.Fprintln(w, styles.ErrorStyle.Render(err.Error()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'choice -h' for help")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show prompt lifecycle details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newFlattenCmd())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.SetCompletionCommandGroupID(GroupConfig)
}
