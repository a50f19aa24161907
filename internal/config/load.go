package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/josephgoksu/kanban-sheets/types"
)

var validate = validator.New()

// Setup prepares v: environment handling, defaults and the config file
// location. An explicit cfgFile replaces the search paths.
func Setup(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := BindEnv(v); err != nil {
		return fmt.Errorf("failed to bind environment: %w", err)
	}
	ApplyDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return nil
	}
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	for _, dir := range SearchPaths() {
		v.AddConfigPath(dir)
	}
	return nil
}

// ReadFile reads the config file located by Setup. A missing file found by
// searching is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper) (found bool, err error) {
	err = v.ReadInConfig()
	if err == nil {
		return true, nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
}

// Load unmarshals v into an AppConfig and validates it.
func Load(v *viper.Viper) (*types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.Sheets.Enabled = cfg.Backend == "sheets"
	cfg.File.Enabled = cfg.Backend == "file"

	if used := v.ConfigFileUsed(); used != "" {
		cfg.File.Path = ResolvePath(cfg.File.Path, used)
		cfg.Sheets.CredentialsFile = ResolvePath(cfg.Sheets.CredentialsFile, used)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first configuration problems in readable form.
func Validate(cfg *types.AppConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Namespace(), e.Param(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed rule %s", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
