package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "percolate"
	envPrefix  = "PERCOLATE"
)

// NetworkConfig selects where the network comes from: a generator or a file.
type NetworkConfig struct {
	Kind     string  `mapstructure:"network" validate:"omitempty,oneof=path cycle star complete grid er regular"`
	Input    string  `mapstructure:"input" validate:"required_without=Kind,excluded_with=Kind"`
	Nodes    int     `mapstructure:"nodes" validate:"gte=0"`
	Rows     int     `mapstructure:"rows" validate:"gte=0"`
	Cols     int     `mapstructure:"cols" validate:"gte=0"`
	Degree   int     `mapstructure:"degree" validate:"gte=0"`
	EdgeProb float64 `mapstructure:"edge-probability" validate:"gte=0,lte=1"`
	Seed     int64   `mapstructure:"network-seed"`
}

type LogConfig struct {
	LogLevel  string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log-format" validate:"oneof=json console"`
	LogFile   string `mapstructure:"log-file"`
}

// GenerateConfig is the configuration of the generate command.
type GenerateConfig struct {
	LogConfig     `mapstructure:",squash"`
	NetworkConfig `mapstructure:",squash"`
	Output        string `mapstructure:"output"`
}

// RunConfig is the configuration of the run command.
type RunConfig struct {
	LogConfig     `mapstructure:",squash"`
	NetworkConfig `mapstructure:",squash"`
	Process       string `mapstructure:"process" validate:"oneof=bond residual"`
	Samples       int    `mapstructure:"samples" validate:"gte=1"`
	Points        string `mapstructure:"points"`
	Policy        string `mapstructure:"policy" validate:"oneof=at-or-after at-or-before"`
	Depth         int    `mapstructure:"depth" validate:"gte=1"`
	Trials        int    `mapstructure:"trials" validate:"gte=1"`
	Workers       int    `mapstructure:"workers" validate:"gte=1"`
	Seed          int64  `mapstructure:"seed"`
	Format        string `mapstructure:"format" validate:"oneof=jsonl csv yaml"`
	Summary       bool   `mapstructure:"summary"`
	Output        string `mapstructure:"output"`
}

// loadConfig layers percolate.yaml (or --config), PERCOLATE_* variables and
// the command's flags into cfg, then validates it.
func loadConfig[T any](cmd *cobra.Command, cfg *T) error {
	v := viper.New()
	v.SetConfigType("yaml")
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return err
	}

	return validateConfig(cfg)
}

var validate = newValidator()

// newValidator names fields by their configuration keys in error messages.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})

	return v
}

// validateConfig reports every failed field in one error.
func validateConfig(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, formatFieldError(e))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}

	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required_without":
		return "one of network or input is required"
	case "excluded_with":
		return "network and input are mutually exclusive"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parsePoints reads a comma-separated list of probabilities. Range checks
// are left to the percolation package.
func parsePoints(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("points: %q: %w", part, err)
		}
		out = append(out, p)
	}

	return out, nil
}
