// Package config provides configuration management for exforms.
// It handles loading, saving, and validating application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yllada/exforms/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme" validate:"oneof=auto light dark"`
	// Host selects the widget host: "gtk" or "tui".
	Host string `yaml:"host" validate:"oneof=gtk tui"`
	// SingleInstance keeps a second copy of the program from starting.
	SingleInstance bool `yaml:"single_instance"`
	// PositionBackend selects where window positions are kept: "file" or "sqlite".
	PositionBackend string `yaml:"position_backend" validate:"oneof=file sqlite"`
	// PositionDir overrides the directory holding saved positions.
	PositionDir string `yaml:"position_dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:           common.ThemeAuto,
		Host:            common.HostGTK,
		SingleInstance:  true,
		PositionBackend: common.PositionBackendFile,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path, writing the defaults there
// when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(common.ErrConfigLoad, err.Error())
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, common.WrapError(common.ErrInvalidConfig, err.Error())
	}

	config.validate()
	return config, nil
}

// validate resets every field that fails validation to its default.
func (c *Config) validate() {
	err := validatorInstance().Struct(c)
	if err == nil {
		return
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		common.LogWarn("configuration validation failed: %v", err)
		return
	}

	defaults := DefaultConfig()
	for _, fe := range ves {
		common.LogWarn("invalid %s %q, using default", fe.Field(), fe.Value())
		switch fe.StructField() {
		case "Theme":
			c.Theme = defaults.Theme
		case "Host":
			c.Host = defaults.Host
		case "PositionBackend":
			c.PositionBackend = defaults.PositionBackend
		}
	}
}

// Save saves the configuration to the default config file.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to path.
func (c *Config) SaveTo(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return common.WrapError(common.ErrConfigSave, fmt.Sprintf("creating config directory: %v", err))
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return common.WrapError(common.ErrConfigSave, fmt.Sprintf("serializing configuration: %v", err))
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return common.WrapError(common.ErrConfigSave, err.Error())
	}

	return nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}
