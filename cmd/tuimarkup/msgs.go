package tuimarkup

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Render tagged markup as styled terminal text"
	MsgRenderShort    = "Render markup files"
	MsgSpansShort     = "Print the resolved spans of markup files"
	MsgCheckShort     = "Check markup files for invalid tags"
	MsgTagsShort      = "List the built-in colors and modifiers"
	MsgSyntaxShort    = "Show the markup syntax reference"
	MsgGenConfigShort = "Print an example configuration file"
	MsgManShort       = "Generate man pages"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgCheckOK      = "%s: %d spans"
	MsgCheckFailed  = "%s: %v"
	MsgCheckSummary = "%d of %d files failed"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReadInput  = "failed to read %s"
	MsgErrNoCommand  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/tuimarkup/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml"
	MsgFlagColor   = "Color mode: auto, always, never"
	MsgFlagManDir  = "Directory to write man pages to"

	// stdinName labels input read from standard input
	stdinName = "<stdin>"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/topics/syntax.md
	MsgSyntaxReference string

	//go:embed msgs/topics
	helpTopics embed.FS

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
