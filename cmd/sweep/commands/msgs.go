package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Find dependency folders and build litter in a directory tree"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration sweep would use for the given directory, as TOML, after every layer has been applied."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Extra config file layered over the others"
	MsgFlagOutput  = "Output format (text, json, yaml)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagDir     = "Also report directories matching `pattern` (repeatable)"
	MsgFlagFile    = "Also report files matching `pattern` (repeatable)"
	MsgFlagManDir  = "Write man pages to `dir` instead of stdout"

	// Version
	MsgVersionFormat = "sweep version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages and templates
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
