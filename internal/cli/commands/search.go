// Package commands holds the cobra command definitions for minigrep.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/minigrep/internal/logging"
	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/runner"
)

// SearchOptions holds command-line options for the search command.
type SearchOptions struct {
	IgnoreCase   bool
	LineNumber   bool
	Count        bool
	UnicodeFold  bool
	Output       string
	SettingsFile string
	Debug        bool
	LogFile      string
}

// NewSearchCommand creates the search command. lookup is used to read
// CASE_INSENSITIVE; pass os.LookupEnv outside of tests.
func NewSearchCommand(lookup config.LookupFunc) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `Search a file for a query string and print every line that contains it.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value, even an empty one) or --ignore-case is given.

Exit codes:
  0 - Search completed (including when nothing matched)
  2 - Missing arguments, unreadable file, or other error`,
		Example: `  minigrep duct poem.txt
  CASE_INSENSITIVE=1 minigrep rUsT poem.txt
  minigrep -n -o json to poem.txt`,
		// Too few arguments is reported by the configuration builder so the
		// message can say which one is missing.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts, lookup)
		},
	}

	// Flags
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Ignore case (same as setting CASE_INSENSITIVE)")
	cmd.Flags().BoolVarP(&opts.LineNumber, "line-number", "n", false, "Prefix each line with its line number")
	cmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print only the number of matching lines")
	cmd.Flags().BoolVar(&opts.UnicodeFold, "unicode-fold", false, "Use full Unicode case folding when ignoring case")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", string(config.DefaultOutput), "Output format (text|json)")
	cmd.Flags().StringVar(&opts.SettingsFile, "config", "", "Settings file (YAML)")

	// Logging flags
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Write debug logs to stderr")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Also write logs to this file (rotated)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions, lookup config.LookupFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	caseInsensitive := opts.IgnoreCase || config.CaseInsensitiveFromEnv(lookup)
	cfg, err := config.New(args, caseInsensitive)
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}

	settings, err := resolveSettings(ctx, cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(settings.Log, opts.Debug, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	formatter, err := createFormatter(settings)
	if err != nil {
		return err
	}

	if _, err := runner.Run(ctx, cfg, cmd.OutOrStdout(),
		runner.WithFormatter(formatter),
		runner.WithUnicodeFold(settings.UnicodeFold),
		runner.WithLogger(logger),
	); err != nil {
		logger.Debug("search failed", zap.Error(err))
		return fmt.Errorf("application error: %w", err)
	}

	return nil
}

// resolveSettings loads the settings file, if any, then applies flags that
// were set explicitly on the command line.
func resolveSettings(ctx context.Context, cmd *cobra.Command, opts *SearchOptions) (*config.Settings, error) {
	settings, err := config.LoadSettings(ctx, opts.SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		settings.Output = config.OutputFormat(opts.Output)
	}
	if flags.Changed("line-number") {
		settings.LineNumber = opts.LineNumber
	}
	if flags.Changed("count") {
		settings.Count = opts.Count
	}
	if flags.Changed("unicode-fold") {
		settings.UnicodeFold = opts.UnicodeFold
	}
	if flags.Changed("log-file") {
		settings.Log.File = opts.LogFile
	}

	if err := config.ValidateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func createFormatter(settings *config.Settings) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		LineNumber: settings.LineNumber,
		Count:      settings.Count,
	}

	switch settings.Output {
	case config.OutputText:
		return output.NewTextFormatter(formatOpts), nil
	case config.OutputJSON:
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", settings.Output)
	}
}
