// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp files
// PURPOSE: Test layered configuration loading and custom tag definitions

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/SkwalExe/tui-markup/pkg/config"
	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// isolate points every lookup at empty temp directories
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Empty(t, cfg.Tags)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "custom.toml"), `
[output]
format = "json"

[tags.keyboard]
fg = "blue"
bg = "green"
modifiers = ["b"]
`)

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color, "unset keys keep their defaults")
	require.Contains(t, cfg.Tags, "keyboard")
	assert.Equal(t, config.TagDef{Fg: "blue", Bg: "green", Modifiers: []string{"b"}}, cfg.Tags["keyboard"])
}

func TestLoadYAMLFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "custom.yaml"), `
output:
  color: never
tags:
  warn:
    fg: "#ffaf00"
    modifiers: [bold, u]
`)

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, cfg.Output.Color)
	assert.Equal(t, []string{"bold", "u"}, cfg.Tags["warn"].Modifiers)
}

func TestLoadUserConfigFromXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "tuimarkup", "config.toml"), `
[tags.key]
fg = "red"
`)

	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, "red", cfg.Tags["key"].Fg)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "custom.toml"), `
[output]
format = "json"
`)
	t.Setenv("TUIMARKUP_OUTPUT_FORMAT", "yaml")
	t.Setenv("TUIMARKUP_OUTPUT_COLOR", "always")
	t.Setenv("TUIMARKUP_TAGS_ALERT_MODIFIERS", "b,u")

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format, "env wins over the file")
	assert.Equal(t, config.ColorAlways, cfg.Output.Color)
	assert.Equal(t, []string{"b", "u"}, cfg.Tags["alert"].Modifiers)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := config.LoadConfiguration(filepath.Join(dir, "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "bad.toml"), "[output\nformat = ")
		_, err := config.LoadConfiguration(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_color_mode", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "color.toml"), "[output]\ncolor = \"sometimes\"\n")
		_, err := config.LoadConfiguration(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		assert.Equal(t, "output.color", errors.GetErrorDetails(err)["key"])
	})
}

func TestTagDefStyle(t *testing.T) {
	tests := []struct {
		name    string
		def     config.TagDef
		want    style.Style
		wantErr string
	}{
		{
			name: "full",
			def:  config.TagDef{Fg: "blue", Bg: "#00ff00", Modifiers: []string{"b", "italic"}},
			want: style.Style{Fg: style.Blue, Bg: style.RGB(0, 255, 0), Modifiers: style.Bold | style.Italic},
		},
		{
			name: "index_colors",
			def:  config.TagDef{Fg: "208"},
			want: style.Style{Fg: style.Indexed(208)},
		},
		{
			name: "empty",
			def:  config.TagDef{},
			want: style.Style{},
		},
		{name: "bad_fg", def: config.TagDef{Fg: "mauve"}, wantErr: `unknown foreground color "mauve"`},
		{name: "bad_bg", def: config.TagDef{Bg: "#12"}, wantErr: `unknown background color "#12"`},
		{name: "bad_modifier", def: config.TagDef{Modifiers: []string{"blink"}}, wantErr: `unknown modifier "blink"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.def.Style()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.Example()
		table, err := cfg.Resolver()
		require.NoError(t, err)
		assert.Equal(t, style.Style{Fg: style.Blue, Bg: style.Green, Modifiers: style.Bold}, table["keyboard"])
		assert.Len(t, table, 2)
	})

	t.Run("reports_every_invalid_tag", func(t *testing.T) {
		cfg := config.Config{Tags: map[string]config.TagDef{
			"ok":   {Fg: "red"},
			"bad1": {Fg: "mauve"},
			"bad2": {Modifiers: []string{"wobble"}},
		}}

		table, err := cfg.Resolver()
		require.Error(t, err)
		assert.Nil(t, table)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		assert.Equal(t, 2, errors.GetErrorDetails(err)["count"])

		var me *errors.MarkupError
		require.ErrorAs(t, err, &me)
		inner := multierr.Errors(me.Wrapped)
		require.Len(t, inner, 2)
		assert.Contains(t, inner[0].Error(), `tag "bad1"`)
		assert.Contains(t, inner[1].Error(), `tag "bad2"`)
	})
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent(config.Example())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# tuimarkup configuration"))
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "[tags.keyboard]")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "value lines are commented out: %q", line)
	}
}

func TestGenerateConfigContentLoadsBack(t *testing.T) {
	dir := isolate(t)
	content, err := config.GenerateConfigContent(config.Example())
	require.NoError(t, err)

	var uncommented []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, "=") {
			line = strings.TrimPrefix(line, "# ")
		}
		uncommented = append(uncommented, line)
	}
	path := writeFile(t, filepath.Join(dir, "example.toml"), strings.Join(uncommented, "\n"))

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, config.Example(), *cfg)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, config.GetDefaultsContent(), "[output]")
}
