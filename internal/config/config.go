// Package config loads application settings from defaults, a .env file,
// command-line flags, and environment variables, in that order of increasing
// priority, and validates the result.
package config

import (
	"flag"
	"log"
	"os"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries the application settings.
type Config struct {
	// StorageDir is the directory holding the persisted JSON files. An
	// unusable directory does not fail startup; the store degrades to
	// in-memory-only reads and no-op writes.
	StorageDir string `env:"STORAGE_DIR" validate:"omitempty,storagedir"`

	// InMemory forces the in-memory storage backend, ignoring StorageDir.
	InMemory bool `env:"IN_MEMORY"`

	LogLevel string `env:"LOG_LEVEL" validate:"loglevel"`

	// AuthAPIBase is the base URL of the remote identity API.
	AuthAPIBase string `env:"AUTH_API_BASE" validate:"url"`
}

var defaultConfig = Config{
	StorageDir:  ".todokeeper",
	InMemory:    false,
	LogLevel:    "info",
	AuthAPIBase: "https://dummyjson.com",
}

func validateStorageDir(fieldLevel validator.FieldLevel) bool {
	path := fieldLevel.Field().String()
	_, err := os.Stat(path)

	return err == nil || os.IsNotExist(err)
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	err = validate.RegisterValidation("storagedir", validateStorageDir)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

// InitOption customizes New.
type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing skips command-line flag parsing; tests use it to
// keep os.Args out of the picture.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New builds the configuration from all sources and validates it.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Unable to load .env file: %v", err)
	}

	values := defaultConfig

	if !options.disableFlagsParsing {
		flag.StringVar(&values.StorageDir, "s", values.StorageDir, "directory for persisted JSON state")
		flag.BoolVar(&values.InMemory, "m", values.InMemory, "keep all state in memory only")
		flag.StringVar(&values.LogLevel, "l", values.LogLevel, "logger level")
		flag.StringVar(&values.AuthAPIBase, "auth-api", values.AuthAPIBase, "base URL of the remote identity API")
		flag.Parse()
	}

	var valuesFromEnv Config
	if err := env.Parse(&valuesFromEnv); err != nil {
		return nil, err
	}

	if valuesFromEnv.StorageDir != "" {
		values.StorageDir = valuesFromEnv.StorageDir
	}
	if valuesFromEnv.InMemory {
		values.InMemory = true
	}
	if valuesFromEnv.LogLevel != "" {
		values.LogLevel = valuesFromEnv.LogLevel
	}
	if valuesFromEnv.AuthAPIBase != "" {
		values.AuthAPIBase = valuesFromEnv.AuthAPIBase
	}

	if err := values.validate(); err != nil {
		return nil, err
	}

	return &values, nil
}
