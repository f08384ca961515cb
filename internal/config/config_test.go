package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	envVars := []string{
		"GYM_LOGGING_LEVEL", "GYM_LOGGING_FORMAT", "GYM_LOGGING_OUTPUT",
		"GYM_PATHS_DATA_DIR", "GYM_PATHS_REPORTS_DIR", "GYM_PATHS_LOGS_DIR",
	}

	// Save original values and restore them after the test
	originalEnv := make(map[string]string)
	for _, envVar := range envVars {
		originalEnv[envVar] = os.Getenv(envVar)
	}
	defer func() {
		for _, envVar := range envVars {
			if val := originalEnv[envVar]; val != "" {
				os.Setenv(envVar, val)
			} else {
				os.Unsetenv(envVar)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func()
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "default configuration with no env vars",
			setupEnv: func() {
				for _, envVar := range envVars {
					os.Unsetenv(envVar)
				}
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "both", cfg.Logging.Output)
				assert.Empty(t, cfg.Paths.DataDir)
			},
		},
		{
			name: "environment overrides",
			setupEnv: func() {
				os.Setenv("GYM_LOGGING_LEVEL", "debug")
				os.Setenv("GYM_LOGGING_OUTPUT", "console")
				os.Setenv("GYM_PATHS_DATA_DIR", "/tmp/gym-data")
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.Equal(t, "/tmp/gym-data", cfg.Paths.DataDir)
			},
		},
		{
			name: "invalid log level rejected",
			setupEnv: func() {
				for _, envVar := range envVars {
					os.Unsetenv(envVar)
				}
				os.Setenv("GYM_LOGGING_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid log output rejected",
			setupEnv: func() {
				for _, envVar := range envVars {
					os.Unsetenv(envVar)
				}
				os.Setenv("GYM_LOGGING_OUTPUT", "syslog")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validateCfg(t, cfg)
		})
	}
}
