package tuimarkup

import (
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"go.uber.org/multierr"

	"github.com/SkwalExe/tui-markup/internal/version"
	"github.com/SkwalExe/tui-markup/pkg/cobrax/topics"
	"github.com/SkwalExe/tui-markup/pkg/config"
	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/generator"
	"github.com/SkwalExe/tui-markup/pkg/logging"
	"github.com/SkwalExe/tui-markup/pkg/render"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render [files...]",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args, render.FormatAuto)
		},
	}
}

func newSpansCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "spans [files...]",
		Short: MsgSpansShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args, render.FormatJSON)
		},
	}
}

func runRender(cmd *cobra.Command, opts *options, args []string, fallback render.Format) error {
	s, err := newSession(cmd, opts, fallback)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, in := range inputs {
		done := logging.LogOperationStart(s.logger, "render "+in.name)
		spans, err := s.spans(in)
		if err != nil {
			s.report(cmd.ErrOrStderr(), in, err)
			return reported(err)
		}
		if err := s.write(out, spans); err != nil {
			return err
		}
		done()
	}
	return nil
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, render.FormatText)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs error
			for _, in := range inputs {
				spans, err := s.spans(in)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", in.name, err))
					pterm.Error.WithWriter(out).Printfln(MsgCheckFailed, in.name, errors.GetErrorCode(err))
					s.report(cmd.ErrOrStderr(), in, err)
					continue
				}
				pterm.Success.WithWriter(out).Printfln(MsgCheckOK, in.name, len(spans))
			}

			if errs != nil {
				failed := len(multierr.Errors(errs))
				s.logger.Info().Int("failed", failed).Int("total", len(inputs)).Msg("Check failed")
				return reported(errors.Wrapf(errs, errors.ErrInvalidInput, MsgCheckSummary, failed, len(inputs)))
			}
			return nil
		},
	}
}

func newTagsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: MsgTagsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, render.FormatText)
			if err != nil {
				return err
			}

			data := pterm.TableData{{"Tag", "Kind", "Sample"}}
			for _, name := range style.ColorNames() {
				c, _ := style.LookupColorName(name)
				data = append(data, []string{name, "color", s.sample(name, style.Style{Fg: c})})
			}
			for _, m := range style.AllModifiers() {
				data = append(data, []string{m.Code, "modifier (mod:" + m.Name + ")", s.sample(m.Name, style.Style{Modifiers: m.Modifier})})
			}

			names := make([]string, 0, len(s.cfg.Tags))
			for name := range s.cfg.Tags {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				st, err := s.cfg.Tags[name].Style()
				if err != nil {
					continue
				}
				data = append(data, []string{name, "custom", s.sample(st.String(), st)})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, errors.ErrRender, "failed to render tag table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

// sample shows text in st when the output is a terminal
func (s *session) sample(text string, st style.Style) string {
	if s.format != render.FormatTerminal {
		return text
	}
	return s.renderer.Render([]generator.StyledSpan{generator.Span(text, st)})
}

func newSyntaxCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: MsgSyntaxShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, render.FormatText)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s.format != render.FormatTerminal {
				fmt.Fprint(out, MsgSyntaxReference)
				return nil
			}

			rendered := topics.NewGlamourRenderer(80).Render(MsgSyntaxReference, ".md")
			fmt.Fprint(out, rendered)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(config.Example())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "TUIMARKUP",
				Section: "1",
				Source:  "tuimarkup " + version.Version,
				Manual:  "tuimarkup manual",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tuimarkup %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
