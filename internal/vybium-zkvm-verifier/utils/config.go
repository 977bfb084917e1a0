package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Environment variables read by LoadEnv
const (
	EnvVersion   = "ZKVM_VERIFIER_VERSION"
	EnvVerbosity = "ZKVM_VERIFIER_VERBOSITY"
	EnvMaxPo2    = "ZKVM_VERIFIER_MAX_PO2"
	EnvHash      = "ZKVM_VERIFIER_HASH"
)

// Config represents the verifier settings shared by the CLI and embedders
type Config struct {
	// Version selects the circuit release, e.g. "v1.2"
	Version string

	// MaxPo2 bounds the segment sizes accepted by segment verifier parameters
	MaxPo2 int

	// HashFunction is the default hash suite for control ID lookups
	HashFunction string

	// Verbosity is the log level, 0 (silent) to 5 (trace)
	Verbosity int
}

// DefaultConfig returns the configuration matching the default verifier context
func DefaultConfig() *Config {
	return &Config{
		Version:      "v1.2",
		MaxPo2:       core.DefaultMaxPo2,
		HashFunction: core.HashPoseidon2,
		Verbosity:    3,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version must be set")
	}

	if c.MaxPo2 < core.MinCyclesPo2 || c.MaxPo2 > core.MaxCyclesPo2 {
		return fmt.Errorf("max po2 must be in [%d, %d], got %d", core.MinCyclesPo2, core.MaxCyclesPo2, c.MaxPo2)
	}

	if _, ok := core.Suite(c.HashFunction); !ok {
		return fmt.Errorf("hash function must be one of %v, got '%s'", core.SuiteNames(), c.HashFunction)
	}

	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("verbosity must be in [0, 5], got %d", c.Verbosity)
	}

	return nil
}

// LoadEnv overlays environment settings onto c. Files are read with godotenv
// first; a missing file is not an error. Variables already set in the process
// environment win over file values.
func (c *Config) LoadEnv(files ...string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env files: %w", err)
		}
	}

	if v, ok := os.LookupEnv(EnvVersion); ok {
		c.Version = v
	}
	if v, ok := os.LookupEnv(EnvHash); ok {
		c.HashFunction = v
	}
	if v, ok := os.LookupEnv(EnvMaxPo2); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxPo2, err)
		}
		c.MaxPo2 = n
	}
	if v, ok := os.LookupEnv(EnvVerbosity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvVerbosity, err)
		}
		c.Verbosity = n
	}

	return nil
}

// WithVersion sets the circuit version
func (c *Config) WithVersion(version string) *Config {
	c.Version = version
	return c
}

// WithMaxPo2 sets the largest accepted segment po2
func (c *Config) WithMaxPo2(po2 int) *Config {
	c.MaxPo2 = po2
	return c
}

// WithHashFunction sets the hash function
func (c *Config) WithHashFunction(hashFunc string) *Config {
	c.HashFunction = hashFunc
	return c
}

// WithVerbosity sets the log verbosity
func (c *Config) WithVerbosity(level int) *Config {
	c.Verbosity = level
	return c
}

