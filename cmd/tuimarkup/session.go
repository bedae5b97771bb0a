package tuimarkup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SkwalExe/tui-markup/pkg/config"
	"github.com/SkwalExe/tui-markup/pkg/diagnostic"
	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/generator"
	"github.com/SkwalExe/tui-markup/pkg/logging"
	"github.com/SkwalExe/tui-markup/pkg/parser"
	"github.com/SkwalExe/tui-markup/pkg/render"
)

const detailReported = "reported"

// session is everything a command needs to turn markup into output
type session struct {
	cfg       *config.Config
	generator *generator.Generator
	format    render.Format
	renderer  *render.Renderer
	reporter  *diagnostic.Reporter
	logger    zerolog.Logger
}

// input is one markup document
type input struct {
	name string
	src  string
}

// newSession loads the configuration and resolves the output format. fallback
// replaces FormatAuto when the command has a natural default of its own.
func newSession(cmd *cobra.Command, opts *options, fallback render.Format) (*session, error) {
	logger := logging.GetLogger("cli." + cmd.Name())

	cfg, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	custom, err := cfg.Resolver()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	formatName := cfg.Output.Format
	if opts.format != "" {
		formatName = opts.format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	if format == render.FormatAuto && fallback != render.FormatAuto {
		format = fallback
	}

	colorMode := cfg.Output.Color
	if opts.color != "" {
		colorMode = opts.color
	}

	out := cmd.OutOrStdout()
	format = resolveFormat(format, colorMode, out)

	errOut := cmd.ErrOrStderr()
	errRenderer := render.NewRenderer(errOut, colorProfile(colorMode, errOut))

	logger.Debug().
		Str("format", format.String()).
		Str("color", colorMode).
		Int("customTags", len(custom)).
		Msg("Session ready")

	return &session{
		cfg:       cfg,
		generator: generator.New(
			generator.WithCustom(custom),
			generator.WithLogger(logging.GetLogger("generator")),
		),
		format:    format,
		renderer:  render.NewRenderer(out, colorProfile(colorMode, out)),
		reporter:  diagnostic.NewReporter(errRenderer.Lipgloss()),
		logger:    logger,
	}, nil
}

// resolveFormat settles FormatAuto from the color mode and the output
func resolveFormat(f render.Format, colorMode string, w io.Writer) render.Format {
	if f != render.FormatAuto {
		return f
	}
	switch colorMode {
	case config.ColorAlways:
		return render.FormatTerminal
	case config.ColorNever:
		return render.FormatText
	}
	if file, ok := w.(*os.File); ok {
		return f.Resolve(file)
	}
	return render.FormatText
}

// colorProfile picks the termenv profile used for styled output
func colorProfile(colorMode string, w io.Writer) termenv.Profile {
	switch colorMode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	}
	if file, ok := w.(*os.File); ok {
		return termenv.NewOutput(file).EnvColorProfile()
	}
	return termenv.Ascii
}

// readInputs reads every named file; no names or "-" means stdin
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]input, 0, len(args))
	for _, name := range args {
		if name == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileRead, MsgErrReadInput, stdinName)
			}
			inputs = append(inputs, input{name: stdinName, src: string(data)})
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, MsgErrReadInput, name).
				WithDetail("path", name)
		}
		inputs = append(inputs, input{name: name, src: string(data)})
	}
	return inputs, nil
}

// spans parses and flattens one input
func (s *session) spans(in input) ([]generator.StyledSpan, error) {
	items, err := parser.Parse(in.name, in.src)
	if err != nil {
		return nil, err
	}
	return s.generator.Generate(items)
}

// report writes err for the user, underlining the tag for generation errors
func (s *session) report(w io.Writer, in input, err error) {
	if genErr, ok := errors.AsGenError(err); ok {
		fmt.Fprintln(w, s.reporter.Report(in.src, genErr))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", in.name, err)
}

// write renders spans in the session format, ending text output with a newline
func (s *session) write(w io.Writer, spans []generator.StyledSpan) error {
	if err := render.Write(w, s.format, s.renderer, spans); err != nil {
		return err
	}
	switch s.format {
	case render.FormatTerminal, render.FormatText:
		if !strings.HasSuffix(generator.Plain(spans), "\n") {
			_, err := fmt.Fprintln(w)
			return err
		}
	}
	return nil
}

// reported marks err as already shown to the user
func reported(err error) error {
	return errors.Wrap(err, errors.GetErrorCode(err), "already reported").
		WithDetail(detailReported, true)
}

// IsReported tells main whether err still needs printing
func IsReported(err error) bool {
	v, _ := errors.GetErrorDetails(err)[detailReported].(bool)
	return v
}
