/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fentec-project/golhs/lhs"
	"github.com/fentec-project/golhs/tabular"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalidConfig indicates inconsistent configuration values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Defaults DefaultsConfig
	Limits   LimitsConfig
	Output   OutputConfig
	LogLevel string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DefaultsConfig holds the counts used when a request names none.
type DefaultsConfig struct {
	Dimensions int
	Samples    int
}

// LimitsConfig bounds the counts accepted from users. The sampling
// core itself only needs positive counts.
type LimitsConfig struct {
	MinDimensions int
	MaxDimensions int
	MinSamples    int
	MaxSamples    int
	// MaxBins bounds the bins of a histogram request.
	MaxBins int
}

// OutputConfig holds export settings
type OutputConfig struct {
	// Precision is the number of decimals of exported values,
	// negative for exact values.
	Precision int
}

// Load reads configuration from environment variables and validates it.
// The given env files (".env" when none are given) are loaded first;
// missing files are skipped and variables already set are kept.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Defaults: DefaultsConfig{
			Dimensions: getEnvIntOrDefault("LHS_DEFAULT_DIMENSIONS", 2),
			Samples:    getEnvIntOrDefault("LHS_DEFAULT_SAMPLES", 100),
		},
		Limits: LimitsConfig{
			MinDimensions: getEnvIntOrDefault("LHS_MIN_DIMENSIONS", 2),
			MaxDimensions: getEnvIntOrDefault("LHS_MAX_DIMENSIONS", 100),
			MinSamples:    getEnvIntOrDefault("LHS_MIN_SAMPLES", 1),
			MaxSamples:    getEnvIntOrDefault("LHS_MAX_SAMPLES", 10000),
			MaxBins:       getEnvIntOrDefault("LHS_MAX_BINS", 10000),
		},
		Output: OutputConfig{
			Precision: getEnvIntOrDefault("LHS_PRECISION", -1),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks that limits are positive and ordered, that the
// defaults respect them and that the output precision keeps designs
// of up to MaxSamples samples stratified.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.Wrap(ErrInvalidConfig, "port is required")
	}
	l := c.Limits
	if l.MinDimensions < 1 || l.MinDimensions > l.MaxDimensions {
		return errors.Wrapf(ErrInvalidConfig, "dimension limits [%d, %d]", l.MinDimensions, l.MaxDimensions)
	}
	if l.MinSamples < 1 || l.MinSamples > l.MaxSamples {
		return errors.Wrapf(ErrInvalidConfig, "sample limits [%d, %d]", l.MinSamples, l.MaxSamples)
	}
	if l.MaxBins < 1 {
		return errors.Wrapf(ErrInvalidConfig, "bin limit %d", l.MaxBins)
	}
	if err := l.Check(c.Defaults.Dimensions, c.Defaults.Samples); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := tabular.CheckPrecision(c.Output.Precision, l.MaxSamples); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

// Check reports counts outside the limits as an
// lhs.InvalidParameterError.
func (l LimitsConfig) Check(dimensions, samples int) error {
	if dimensions < l.MinDimensions || dimensions > l.MaxDimensions {
		return &lhs.InvalidParameterError{
			Param:  "dimensions",
			Value:  strconv.Itoa(dimensions),
			Reason: fmt.Sprintf("must be between %d and %d", l.MinDimensions, l.MaxDimensions),
		}
	}
	if samples < l.MinSamples || samples > l.MaxSamples {
		return &lhs.InvalidParameterError{
			Param:  "samples",
			Value:  strconv.Itoa(samples),
			Reason: fmt.Sprintf("must be between %d and %d", l.MinSamples, l.MaxSamples),
		}
	}

	return nil
}

// CheckBins reports a histogram bin count above MaxBins as an
// lhs.InvalidParameterError.
func (l LimitsConfig) CheckBins(bins int) error {
	if bins > l.MaxBins {
		return &lhs.InvalidParameterError{
			Param:  "bins",
			Value:  strconv.Itoa(bins),
			Reason: fmt.Sprintf("must be at most %d", l.MaxBins),
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
