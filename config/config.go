package config

import (
	"time"

	"github.com/unicsmcr/hs_activities/environment"

	"go.uber.org/config"
)

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name          string              `yaml:"name"`
	StatusWindows StatusWindowsConfig `yaml:"status_windows"`
}

// StatusWindowsConfig stores how long status messages stay visible after
// each operation, in milliseconds
type StatusWindowsConfig struct {
	SignupMillis            uint `yaml:"signup_millis"`
	UnregisterSuccessMillis uint `yaml:"unregister_success_millis"`
	UnregisterFailureMillis uint `yaml:"unregister_failure_millis"`
}

// Signup returns the display window for signup outcomes, success and failure both
func (c StatusWindowsConfig) Signup() time.Duration {
	return time.Duration(c.SignupMillis) * time.Millisecond
}

// UnregisterSuccess returns the display window for a successful unregistration
func (c StatusWindowsConfig) UnregisterSuccess() time.Duration {
	return time.Duration(c.UnregisterSuccessMillis) * time.Millisecond
}

// UnregisterFailure returns the display window for a failed unregistration
func (c StatusWindowsConfig) UnregisterFailure() time.Duration {
	return time.Duration(c.UnregisterFailureMillis) * time.Millisecond
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	var configProvider *config.YAML
	var err error
	configFiles := []config.YAMLOption{config.File("base.yaml")}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File("production.yaml"))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File("development.yaml"))
	}
	configProvider, err = config.NewYAML(configFiles...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
