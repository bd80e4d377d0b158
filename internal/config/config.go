// Package config loads lattice settings from defaults, LATTICE_ environment
// variables, an optional lattice.yaml and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/lattice/export"
	"github.com/tsawler/lattice/tables"
)

// Config holds every setting the command line consumes.
type Config struct {
	Tolerance float64        `mapstructure:"tolerance" yaml:"tolerance"`
	Flavor    string         `mapstructure:"flavor" yaml:"flavor"`
	Format    string         `mapstructure:"format" yaml:"format"`
	Compress  bool           `mapstructure:"compress" yaml:"compress"`
	Encoding  string         `mapstructure:"encoding" yaml:"encoding"`
	LogLevel  string         `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string         `mapstructure:"log_format" yaml:"log_format"`
	Proposal  ProposalConfig `mapstructure:"proposal" yaml:"proposal"`
}

// ProposalConfig tunes grid proposal from bare segments.
type ProposalConfig struct {
	AlignmentTolerance float64 `mapstructure:"alignment_tolerance" yaml:"alignment_tolerance"`
	MinLineLength      float64 `mapstructure:"min_line_length" yaml:"min_line_length"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	gp := tables.NewGridProposer()
	return &Config{
		Tolerance: tables.DefaultConfig().JointTolerance,
		Flavor:    tables.Lattice.String(),
		Format:    export.CSV.String(),
		Compress:  false,
		Encoding:  export.DefaultEncoding,
		LogLevel:  "info",
		LogFormat: "text",
		Proposal: ProposalConfig{
			AlignmentTolerance: gp.AlignmentTolerance,
			MinLineLength:      gp.MinLineLength,
		},
	}
}

// setDefaults registers every key so environment variables resolve for
// nested settings too.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("flavor", d.Flavor)
	v.SetDefault("format", d.Format)
	v.SetDefault("compress", d.Compress)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("proposal.alignment_tolerance", d.Proposal.AlignmentTolerance)
	v.SetDefault("proposal.min_line_length", d.Proposal.MinLineLength)
}

// Load reads configuration into v and validates it. An empty cfgFile looks
// for lattice.yaml in the working directory and $HOME/.lattice; a missing
// file there is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	// Environment variables with LATTICE_ prefix
	v.SetEnvPrefix("LATTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("lattice")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.lattice")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting that has a closed set of values.
func (c *Config) Validate() error {
	var errs []error
	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance))
	}
	if _, err := tables.ParseFlavor(c.Flavor); err != nil {
		errs = append(errs, err)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if err := export.ValidateEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Proposal.AlignmentTolerance < 0 || c.Proposal.MinLineLength < 0 {
		errs = append(errs, errors.New("proposal tolerances must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// ExportFormat returns the configured export format.
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Format)
}

// TablesConfig returns reconstruction settings that log to logger.
func (c *Config) TablesConfig(logger *slog.Logger) (tables.Config, error) {
	flavor, err := tables.ParseFlavor(c.Flavor)
	if err != nil {
		return tables.Config{}, err
	}
	return tables.Config{
		Flavor:         flavor,
		JointTolerance: c.Tolerance,
		Logger:         logger,
	}, nil
}

// GridProposer returns a proposer using the proposal settings.
func (c *Config) GridProposer() *tables.GridProposer {
	return &tables.GridProposer{
		AlignmentTolerance: c.Proposal.AlignmentTolerance,
		MinLineLength:      c.Proposal.MinLineLength,
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# lattice configuration
# Every key can be overridden with a LATTICE_ environment variable,
# e.g. LATTICE_TOLERANCE=3 or LATTICE_PROPOSAL_MIN_LINE_LENGTH=5

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
