package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig tests the DefaultConfig function
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NotNil(t, config)

	assert.Equal(t, "v1.2", config.Version)
	assert.Equal(t, 21, config.MaxPo2)
	assert.NoError(t, config.Validate())
}

// TestConfigValidate tests the Validate method
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{"valid default config", DefaultConfig(), false},
		{"empty version", DefaultConfig().WithVersion(""), true},
		{"po2 below range", DefaultConfig().WithMaxPo2(12), true},
		{"po2 above range", DefaultConfig().WithMaxPo2(25), true},
		{"po2 at max", DefaultConfig().WithMaxPo2(24), false},
		{"unknown hash", DefaultConfig().WithHashFunction("sha3"), true},
		{"sha-256", DefaultConfig().WithHashFunction("sha-256"), false},
		{"negative verbosity", DefaultConfig().WithVerbosity(-1), true},
		{"verbosity too high", DefaultConfig().WithVerbosity(6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ZKVM_VERIFIER_VERSION=v1.1\nZKVM_VERIFIER_MAX_PO2=18\n"), 0o600))

	// godotenv does not override variables that are already set
	t.Setenv(EnvVersion, "v1.0")
	t.Setenv(EnvMaxPo2, "")
	require.NoError(t, os.Unsetenv(EnvMaxPo2))

	config := DefaultConfig()
	require.NoError(t, config.LoadEnv(path))

	assert.Equal(t, "v1.0", config.Version)
	assert.Equal(t, 18, config.MaxPo2)
}

func TestLoadEnvMissingFile(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadEnvInvalidNumber(t *testing.T) {
	t.Setenv(EnvVerbosity, "loud")
	config := DefaultConfig()
	assert.Error(t, config.LoadEnv())
}
