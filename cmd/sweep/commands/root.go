// Package commands implements the sweep command line.
package commands

import (
	"github.com/arthur-debert/sweep/internal/version"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by the scan and config commands
type rootOptions struct {
	verbosity  int
	configFile string
	format     string
	noColor    bool
	dirs       []string
	files      []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "sweep [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, rootArg(args))
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&opts.format, "output", "o", "", MsgFlagOutput)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringArrayVar(&opts.dirs, "dir", nil, MsgFlagDir)
	flags.StringArrayVar(&opts.files, "file", nil, MsgFlagFile)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
