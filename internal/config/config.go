// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

// Runtime modes.
const (
	ModeService     = "service"
	ModeLambdaHTTP  = "lambda-http"
	ModeLambdaEvent = "lambda-event"
)

// FileEnv names the environment variable pointing at the configuration file.
const FileEnv = "DELAY_RESPONDER_CONFIG"

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Service is a struct that contains the configuration for the service mode.
	Service service
	// Lambda is a struct that contains the configuration for the lambda modes.
	Lambda lambda
	// Capture is a struct that contains the configuration for payload capture.
	Capture capture
	// Call is a struct that contains the configuration for the call command.
	Call call
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"service"`
	// Variant is the name of the delay preset to serve.
	Variant string `yaml:"variant,omitempty" default:"short"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty" default:"127.0.0.1"`
	Port    string        `yaml:"port,omitempty" default:"5000"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v2"`
}

type capture struct {
	S3 struct {
		Enabled    bool   `yaml:"enabled,omitempty"`
		BucketName string `yaml:"bucketName,omitempty"`
		Prefix     string `yaml:"prefix,omitempty"`
	} `yaml:"s3,omitempty"`
}

type call struct {
	// URL defaults to the service address and path when empty.
	URL     string        `yaml:"url,omitempty"`
	Method  string        `yaml:"method,omitempty" default:"POST"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"120s"`
	// FatalCodes is a comma separated list of status codes that must not be retried.
	FatalCodes string `yaml:"fatalCodes,omitempty"`
}

// SetDefaults sets the default values for the configuration.
// Values already set, e.g. from a configuration file, are kept.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
		defaults.Set(&Capture),
		defaults.Set(&Call),
	)
}

// Reset zeroes every configuration section.
func Reset() {
	Global = global{}
	Service = service{}
	Lambda = lambda{}
	Capture = capture{}
	Call = call{}
}

// FilePath returns the configuration file path taken from FileEnv, or config.yaml.
func FilePath() string {
	if p, found := os.LookupEnv(FileEnv); found {
		return p
	}
	return "config.yaml"
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global  `yaml:"global,omitempty"`
		Service service `yaml:"service,omitempty"`
		Lambda  lambda  `yaml:"lambda,omitempty"`
		Capture capture `yaml:"capture,omitempty"`
		Call    call    `yaml:"call,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Service = a.Service
	Lambda = a.Lambda
	Capture = a.Capture
	Call = a.Call

	return nil
}
