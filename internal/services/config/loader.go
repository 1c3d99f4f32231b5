package config

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fshelp/internal/errors"
	"fshelp/internal/logging"
)

const envPrefix = "FSHELP"

//nolint:gochecknoglobals // Flag to configuration key table
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"fs":         "fs.kind",
	"root":       "fs.root",
	"read-only":  "fs.readonly",
}

//nolint:gochecknoglobals // Package-level constants for format validation
var validLogFormats = []string{"text", "json"}

// Loader reads settings from a config file, the environment and flags.
type Loader struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewLoader creates a new settings loader reading config files from fs.
func NewLoader(fs afero.Fs, logger *slog.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// Load resolves the settings. A missing config file yields the defaults.
// Precedence, highest first: changed flags, FSHELP_* variables, file, defaults.
func (l *Loader) Load(ctx context.Context, path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultSettings())

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.NewConfigurationError(key, name, "failed to bind flag", err)
			}
		}
	}

	if path != "" {
		exists, err := afero.Exists(l.fs, path)
		if err != nil {
			return nil, errors.NewConfigurationError("config_path", path, "failed to check config file", err)
		}

		if exists {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.NewConfigurationError("config_path", path, "failed to read config file", err)
			}
			l.logger.DebugContext(ctx, "Configuration file loaded", "path", path)
		} else {
			l.logger.DebugContext(ctx, "Configuration file does not exist", "path", path)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, errors.NewConfigurationError("config_format", "yaml", "failed to unmarshal configuration", err)
	}

	if err := validate(settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper, defaults Settings) {
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("fs.kind", defaults.FS.Kind)
	v.SetDefault("fs.root", defaults.FS.Root)
	v.SetDefault("fs.readonly", defaults.FS.ReadOnly)

	for _, field := range defaults.Directories.Fields() {
		v.SetDefault("directories."+strings.ToLower(field[0]), field[1])
	}
}

func validate(settings Settings) error {
	if _, err := logging.ParseLevel(settings.Log.Level); err != nil {
		return errors.NewConfigurationError("log.level", settings.Log.Level, "unsupported log level", err)
	}

	if !slices.Contains(validLogFormats, settings.Log.Format) {
		return errors.NewValidationError("log.format", settings.Log.Format, validLogFormats...)
	}

	return nil
}
