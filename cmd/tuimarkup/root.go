package tuimarkup

import (
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SkwalExe/tui-markup/internal/version"
	"github.com/SkwalExe/tui-markup/pkg/cobrax/topics"
	"github.com/SkwalExe/tui-markup/pkg/logging"
)

// options holds the persistent flags shared by every command
type options struct {
	verbosity  int
	configPath string
	format     string
	color      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "tuimarkup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newSpansCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newTagsCmd(opts))
	rootCmd.AddCommand(newSyntaxCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Help topics are embedded, so a failure here is a build problem
	topicsFS, err := fs.Sub(helpTopics, "msgs/topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topicRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
