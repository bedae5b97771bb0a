package render

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/generator"
)

// SpanDoc is the serialized form of a StyledSpan
type SpanDoc struct {
	Text      string   `json:"text" yaml:"text"`
	Fg        string   `json:"fg,omitempty" yaml:"fg,omitempty"`
	Bg        string   `json:"bg,omitempty" yaml:"bg,omitempty"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// Document converts spans into their serialized form
func Document(spans []generator.StyledSpan) []SpanDoc {
	docs := make([]SpanDoc, len(spans))
	for i, span := range spans {
		docs[i] = SpanDoc{
			Text:      span.Text,
			Fg:        span.Style.Fg.String(),
			Bg:        span.Style.Bg.String(),
			Modifiers: span.Style.Modifiers.Names(),
		}
	}
	return docs
}

// JSON encodes spans as an indented JSON array
func JSON(spans []generator.StyledSpan) ([]byte, error) {
	data, err := json.MarshalIndent(Document(spans), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode spans as JSON")
	}
	return data, nil
}

// YAML encodes spans as a YAML sequence
func YAML(spans []generator.StyledSpan) ([]byte, error) {
	data, err := yaml.Marshal(Document(spans))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode spans as YAML")
	}
	return data, nil
}

// Text drops all styling
func Text(spans []generator.StyledSpan) string {
	return generator.Plain(spans)
}

// Write renders spans to w in format f. FormatAuto must be resolved by the
// caller; it is treated as FormatText here.
func Write(w io.Writer, f Format, r *Renderer, spans []generator.StyledSpan) error {
	var out []byte
	switch f {
	case FormatTerminal:
		out = []byte(r.Render(spans))
	case FormatJSON:
		data, err := JSON(spans)
		if err != nil {
			return err
		}
		out = append(data, '\n')
	case FormatYAML:
		data, err := YAML(spans)
		if err != nil {
			return err
		}
		out = data
	case FormatAuto, FormatText:
		out = []byte(Text(spans))
	default:
		return errors.Newf(errors.ErrRender, "unsupported format %s", f)
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, errors.ErrRender, fmt.Sprintf("failed to write %s output", f))
	}
	return nil
}
