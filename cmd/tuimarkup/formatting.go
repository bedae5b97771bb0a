package tuimarkup

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SkwalExe/tui-markup/pkg/cobrax/topics"
	"github.com/SkwalExe/tui-markup/pkg/render"
)

// stdoutIsTerminal reports whether help output goes to a terminal
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !stdoutIsTerminal() || os.Getenv("NO_COLOR") != "" {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// topicRenderer renders markdown topics with glamour on a color terminal and
// leaves them as plain markdown otherwise
func topicRenderer() topics.Renderer {
	glamour := topics.NewGlamourRenderer(80)
	return topics.RendererFunc(func(content, format string) string {
		if render.DetectFormat(os.Stdout) != render.FormatTerminal {
			return content
		}
		return glamour.Render(content, format)
	})
}
