package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/SkwalExe/tui-markup/pkg/errors"
)

const generatedHeader = `# tuimarkup configuration
#
# Uncomment and edit the values you want to change. Custom tags are only
# consulted when a tag is not a built-in form (fg:, bg:, mod:, modifier
# aliases and color names always win).

`

// Example returns a configuration showing every supported key
func Example() Config {
	return Config{
		Output: OutputConfig{Format: "auto", Color: ColorAuto},
		Tags: map[string]TagDef{
			"keyboard": {Fg: "blue", Bg: "green", Modifiers: []string{"b"}},
			"warning":  {Fg: "#ffaf00", Modifiers: []string{"bold", "u"}},
		},
	}
}

// GenerateConfigContent renders cfg as TOML with every value commented out
func GenerateConfigContent(cfg Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [output], [tags.keyboard]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
