package commands

import (
	"github.com/arthur-debert/sweep/pkg/config"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/output"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/arthur-debert/sweep/pkg/scanner"
	"github.com/arthur-debert/sweep/pkg/targets"
	"github.com/spf13/cobra"
)

// loadConfig resolves the configuration for root, with flag overrides and
// the --dir/--file targets applied
func loadConfig(cmd *cobra.Command, opts *rootOptions, root string) (paths.Paths, *config.Config, error) {
	p, err := paths.New(root)
	if err != nil {
		return nil, nil, err
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		overrides["output.format"] = opts.format
	}
	if cmd.Flags().Changed("no-color") {
		overrides["output.no_color"] = opts.noColor
	}

	cfg, err := config.Load(config.LoadOptions{
		Paths:     p,
		File:      opts.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, nil, err
	}

	for _, pattern := range opts.dirs {
		cfg.Targets = append(cfg.Targets, config.Target{Kind: "dir", Pattern: pattern, Action: config.ActionPrune})
	}
	for _, pattern := range opts.files {
		cfg.Targets = append(cfg.Targets, config.Target{Kind: "file", Pattern: pattern, Action: config.ActionPrune})
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return p, cfg, nil
}

// runScan walks root and prints every target it finds
func runScan(cmd *cobra.Command, opts *rootOptions, root string) error {
	logger := logging.GetLogger("cmd.scan")

	p, cfg, err := loadConfig(cmd, opts, root)
	if err != nil {
		return err
	}

	sink, err := output.NewSink(output.Options{
		Format:  cfg.Output.Format,
		NoColor: cfg.Output.NoColor,
		Root:    p.Root(),
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	s := scanner.New(scanner.WithErrorHandler(sink.ReportError))
	if err := targets.Register(s, cfg.Targets, sink); err != nil {
		return err
	}

	scanErr := s.Scan(cmd.Context(), p.Root())
	if err := sink.Close(); err != nil && scanErr == nil {
		scanErr = err
	}

	logger.Info().
		Str("root", p.Root()).
		Int("matches", len(sink.Matches())).
		Int("problems", len(sink.Problems())).
		Err(scanErr).
		Msg("Scan finished")

	return scanErr
}
