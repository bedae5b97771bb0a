// Package config loads tuimarkup configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: an explicit path, or config.toml / config.yaml under
//     $XDG_CONFIG_HOME/tuimarkup
//  3. TUIMARKUP_* environment variables (TUIMARKUP_OUTPUT_FORMAT=json)
//
// The [tags] table defines custom tags; Config.Resolver turns it into the
// custom capability handed to the generator. Tag names must not contain '.',
// which koanf uses as its key delimiter.
package config
