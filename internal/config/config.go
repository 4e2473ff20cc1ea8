// Package config loads tokenizer, dictionary and analysis settings from flags,
// TEXTTX_* environment variables and an optional texttx config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TEXTTX"

// Config is the full configuration of the command line tools.
type Config struct {
	Tokenizer  TokenizerConfig  `mapstructure:"tokenizer"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`
	LogLevel   string           `mapstructure:"log_level"`
}

// TokenizerConfig selects the scan mode, case transform and break oracle.
type TokenizerConfig struct {
	Mode          string `mapstructure:"mode"`
	Transform     string `mapstructure:"transform"`
	LineBreak     bool   `mapstructure:"line_break"`
	MaxBufferSize int    `mapstructure:"max_buffer_size"`
	Language      string `mapstructure:"language"`
}

// DictionaryConfig points at the word component list used for compound splitting.
type DictionaryConfig struct {
	Path  string `mapstructure:"path"`
	Cache bool   `mapstructure:"cache"`
}

// AnalysisConfig controls term stemming.
type AnalysisConfig struct {
	Stem         bool   `mapstructure:"stem"`
	StemLanguage string `mapstructure:"stem_language"`
}

// LoadOptions tells Load where to read settings from.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Mode:          "normal",
			Transform:     "none",
			LineBreak:     false,
			MaxBufferSize: 0,
			Language:      "",
		},
		Dictionary: DictionaryConfig{
			Path:  "",
			Cache: true,
		},
		Analysis: AnalysisConfig{
			Stem:         true,
			StemLanguage: "german",
		},
		LogLevel: "info",
	}
}

// flagKeys maps each flag to the config key it sets.
var flagKeys = map[string]string{
	"tokenizer-mode":            "tokenizer.mode",
	"tokenizer-transform":       "tokenizer.transform",
	"tokenizer-line-break":      "tokenizer.line_break",
	"tokenizer-max-buffer-size": "tokenizer.max_buffer_size",
	"tokenizer-language":        "tokenizer.language",
	"dictionary-path":           "dictionary.path",
	"dictionary-cache":          "dictionary.cache",
	"analysis-stem":             "analysis.stem",
	"analysis-stem-language":    "analysis.stem_language",
	"log-level":                 "log_level",
}

// RegisterFlags adds a flag for every setting to fs, with defaults as values.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-mode", defaults.Tokenizer.Mode, "Whitespace mode (normal|pre|pre-wrap)")
	fs.String("tokenizer-transform", defaults.Tokenizer.Transform, "Case transform (none|capitalize|uppercase|lowercase)")
	fs.Bool("tokenizer-line-break", defaults.Tokenizer.LineBreak, "Break at line break opportunities instead of word boundaries")
	fs.Int("tokenizer-max-buffer-size", defaults.Tokenizer.MaxBufferSize, "Longest token in characters before truncation (0 = unlimited)")
	fs.String("tokenizer-language", defaults.Tokenizer.Language, "BCP 47 language for case mapping")
	fs.String("dictionary-path", defaults.Dictionary.Path, "Word component list for compound splitting")
	fs.Bool("dictionary-cache", defaults.Dictionary.Cache, "Cache compound splits")
	fs.Bool("analysis-stem", defaults.Analysis.Stem, "Stem terms")
	fs.String("analysis-stem-language", defaults.Analysis.StemLanguage, "Snowball stemmer language")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

// Load merges defaults, config file, environment and flags, in increasing
// precedence, and validates the result.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		fs := opts.Cmd.Flags()
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("texttx")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	if c.Tokenizer.MaxBufferSize < 0 {
		return fmt.Errorf("tokenizer.max_buffer_size must not be negative, got %d", c.Tokenizer.MaxBufferSize)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Analysis.Stem && c.Analysis.StemLanguage == "" {
		return errors.New("analysis.stem_language is required when stemming is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.mode", c.Tokenizer.Mode)
	v.SetDefault("tokenizer.transform", c.Tokenizer.Transform)
	v.SetDefault("tokenizer.line_break", c.Tokenizer.LineBreak)
	v.SetDefault("tokenizer.max_buffer_size", c.Tokenizer.MaxBufferSize)
	v.SetDefault("tokenizer.language", c.Tokenizer.Language)
	v.SetDefault("dictionary.path", c.Dictionary.Path)
	v.SetDefault("dictionary.cache", c.Dictionary.Cache)
	v.SetDefault("analysis.stem", c.Analysis.Stem)
	v.SetDefault("analysis.stem_language", c.Analysis.StemLanguage)
	v.SetDefault("log_level", c.LogLevel)
}

// ParseLogLevel maps a level name to its slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
