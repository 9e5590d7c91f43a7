package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/logging"
	"github.com/arthur-debert/sweep/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "SWEEP_"

// LoadOptions selects the files layered over the defaults
type LoadOptions struct {
	// Paths locates the user and project config files. Nil skips both.
	Paths paths.Paths
	// File is an explicit config file. It must exist when set.
	File string
	// Overrides are dotted keys applied last, such as "output.format"
	// from command line flags.
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. and 3. User and project files, both optional
	if opts.Paths != nil {
		for _, path := range []string{opts.Paths.UserConfigPath(), opts.Paths.ProjectConfigPath()} {
			if _, err := os.Stat(path); err != nil {
				logger.Trace().Str("path", path).Msg("No config file")
				continue
			}
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		}
	}

	// 4. Explicit file
	if opts.File != "" {
		if err := loadFile(k, paths.ExpandHome(opts.File)); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	// 5. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 6. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

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
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("targets", len(cfg.Targets)).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")

	return &cfg, nil
}

// loadFile reads a TOML file, or YAML when the extension says so
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}
