package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alexiusacademia/gosap/internal/logging"
	"github.com/alexiusacademia/gosap/internal/setup"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOSAP_ALPHA
const EnvPrefix = "GOSAP"

// Config is the top-level configuration structure.
type Config struct {
	Units   string        `mapstructure:"units"`
	Alpha   float64       `mapstructure:"alpha"`
	Method  string        `mapstructure:"method"`
	Results ResultsConfig `mapstructure:"results"`
	Average AverageConfig `mapstructure:"average"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ResultsConfig holds the settings the result tables were extracted with.
type ResultsConfig struct {
	NLStatic  string   `mapstructure:"nl_static"`
	MSStatic  string   `mapstructure:"ms_static"`
	MVCombo   string   `mapstructure:"mv_combo"`
	LoadCases []string `mapstructure:"load_cases"`
	Groups    []string `mapstructure:"groups"`
}

// AverageConfig holds the joint averaging settings.
type AverageConfig struct {
	GroupBy       []string `mapstructure:"group_by"`
	Fields        []string `mapstructure:"fields"`
	ProgressEvery int      `mapstructure:"progress_every"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("units", setup.DefaultUnit.String())
	v.SetDefault("alpha", 90.0)
	v.SetDefault("method", "wood-armer")

	v.SetDefault("results.nl_static", "envelope")
	v.SetDefault("results.ms_static", "envelope")
	v.SetDefault("results.mv_combo", "envelope")
	v.SetDefault("results.load_cases", []string{})
	v.SetDefault("results.groups", []string{})

	v.SetDefault("average.group_by", []string{"Joint", "LoadCase", "StepType", "StepNum"})
	v.SetDefault("average.fields", []string{})
	v.SetDefault("average.progress_every", 1000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.directory", "")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true)
}

// Load reads the configuration. Values are taken, lowest priority first,
// from the defaults, the config file, a .env file and the environment.
// When path is empty gosap.yaml is looked up in the working directory and
// in $HOME/.gosap; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gosap")
		v.SetConfigName("gosap")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &conf, nil
}

// ResultOptions converts the result settings into validated setup options.
func (c *Config) ResultOptions() (setup.Options, error) {
	opts := setup.DefaultOptions()

	var err error
	if opts.Units, err = setup.ParseUnit(c.Units); err != nil {
		return opts, err
	}
	if opts.NLStatic, err = setup.ParseStepMode("nl_static", c.Results.NLStatic); err != nil {
		return opts, err
	}
	if opts.MSStatic, err = setup.ParseStepMode("ms_static", c.Results.MSStatic); err != nil {
		return opts, err
	}
	if opts.MVCombo, err = setup.ParseComboMode("mv_combo", c.Results.MVCombo); err != nil {
		return opts, err
	}
	opts.LoadCases = c.Results.LoadCases
	opts.Groups = c.Results.Groups

	return opts, opts.Validate()
}

// LoggingOptions returns the logger settings.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:      c.Logging.Level,
		Directory:  c.Logging.Directory,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
		Compress:   c.Logging.Compress,
	}
}
