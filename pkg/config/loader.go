package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/logging"
)

// EnvPrefix is stripped from environment variables before they are mapped to
// keys: TUIMARKUP_OUTPUT_FORMAT sets output.format.
const EnvPrefix = "TUIMARKUP_"

// appDirName is the directory under the XDG config home
const appDirName = "tuimarkup"

var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadConfiguration loads the layered configuration. An empty path means the
// user config file is searched for in the XDG config directories; a missing
// file is not an error in that case.
func LoadConfiguration(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config file
	if path == "" {
		path = findUserConfig()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
			WithDetail("path", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Str("color", cfg.Output.Color).
		Int("tags", len(cfg.Tags)).
		Msg("Configuration loaded")
	return &cfg, nil
}

// parserFor picks the koanf parser from the file extension; TOML is the default
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// findUserConfig returns the first existing config file under the XDG config
// directories, or "" when there is none
func findUserConfig() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		for _, name := range configFileNames {
			candidate := filepath.Join(configHome, appDirName, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	for _, name := range configFileNames {
		if found, err := xdg.SearchConfigFile(filepath.Join(appDirName, name)); err == nil {
			return found
		}
	}
	return ""
}
