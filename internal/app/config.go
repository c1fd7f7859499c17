package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Configuration keys, shared by config files, MODKIT_* environment variables
// and command-line flags.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyManifests    = "manifests"
	KeyScriptDirs   = "scripts.dirs"
	KeyScriptExts   = "scripts.extensions"
	KeyMenuPrefixes = "scripts.menu_prefixes"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "MODKIT"

var logFormats = []string{"text", "json", "logfmt"}

// MenuPrefix places the scripts of one directory under a menu. It is a list
// entry rather than a map because config keys are case-insensitive and
// directory names are not.
type MenuPrefix struct {
	Dir  string `mapstructure:"dir"`
	Menu string `mapstructure:"menu"`
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogLevel  string
	LogFormat string

	// ManifestsPath is a directory of .hcl module manifests. Empty disables
	// manifest loading.
	ManifestsPath string

	ScriptDirs []string
	// ScriptExtensions limits discovery to these extensions. Empty means
	// every known language.
	ScriptExtensions []string
	// MenuPrefixes maps a script directory to a menu path such as
	// "Plugins > Scripts".
	MenuPrefixes map[string]string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: must be 'debug', 'info', 'warn', 'error' or 'fatal': %w", err)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %s", cfg.LogFormat, strings.Join(logFormats, ", "))
	}
	for dir := range cfg.MenuPrefixes {
		if !slices.Contains(cfg.ScriptDirs, dir) {
			return nil, fmt.Errorf("menu prefix given for '%s', which is not a script directory", dir)
		}
	}

	return &cfg, nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyManifests, "")
	v.SetDefault(KeyScriptDirs, []string{})
	v.SetDefault(KeyScriptExts, []string{})
}

// LoadConfig reads configuration into v and builds a validated Config. When
// configFile is empty, modkit.{toml,yaml,json} is looked up in the working
// directory and its absence is not an error.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("modkit")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var prefixes []MenuPrefix
	if err := v.UnmarshalKey(KeyMenuPrefixes, &prefixes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", KeyMenuPrefixes, err)
	}
	menus := make(map[string]string, len(prefixes))
	for _, p := range prefixes {
		menus[p.Dir] = p.Menu
	}

	return NewConfig(Config{
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		ManifestsPath:    v.GetString(KeyManifests),
		ScriptDirs:       v.GetStringSlice(KeyScriptDirs),
		ScriptExtensions: v.GetStringSlice(KeyScriptExts),
		MenuPrefixes:     menus,
	})
}
