package config

import (
	_ "embed"
	"errors"
	"os"
	"reflect"
	"strings"

	czerrors "github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/paths"
	"github.com/arthur-debert/chromazone/pkg/ui"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "CHROMAZONE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved settings.
type Config struct {
	// File is the style file path
	File string `koanf:"file"`

	// Style is the default style section
	Style string `koanf:"style"`

	// Color is the colour mode: always, auto or never
	Color string `koanf:"color"`

	// ColorMode is Color parsed
	ColorMode ui.ColorMode `koanf:"-"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves settings for the given locations.
func Load(p *paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, czerrors.Wrap(err, czerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Locations
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"file": p.StyleFilePath(),
	}, "."), nil); err != nil {
		return nil, czerrors.Wrap(err, czerrors.ErrConfigLoad, "failed to load default locations")
	}

	// 3. User settings file
	settingsPath := p.SettingsFilePath()
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
			return nil, czerrors.Wrapf(err, czerrors.ErrConfigParse,
				"failed to load settings from %s", settingsPath).
				WithDetail("path", settingsPath)
		}
		logger.Debug().Str("path", settingsPath).Msg("Loaded settings file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, czerrors.Wrap(err, czerrors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, czerrors.Wrap(err, czerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.postProcess(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("file", cfg.File).
		Str("style", cfg.Style).
		Str("color", cfg.ColorMode.String()).
		Msg("Configuration loaded")
	return &cfg, nil
}

// SetColor parses and applies a colour mode, e.g. from a flag.
func (c *Config) SetColor(mode string) error {
	m, err := ui.ParseColorMode(mode)
	if err != nil {
		return czerrors.Wrap(err, czerrors.ErrConfigParse, "invalid color setting").
			WithDetail("color", mode)
	}
	c.Color = m.String()
	c.ColorMode = m
	return nil
}

func (c *Config) postProcess() error {
	c.File = paths.ExpandHome(c.File)
	return c.SetColor(c.Color)
}

// trimStringHookFunc strips surrounding whitespace from string values, which
// environment variables and hand-edited files tend to carry.
func trimStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}
