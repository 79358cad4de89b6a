package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depclosure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warning", cfg.LogLevel)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "format: json\nlog_level: debug\ncache_size: 8\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.CacheSize)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: json\ncache_size: 8\n")
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvCacheSize, "0")
	t.Setenv(EnvLogLevel, "info")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			file:    "format: [json\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "non integer cache size in environment",
			file:    "format: text\n",
			env:     map[string]string{EnvCacheSize: "many"},
			wantErr: "invalid DEPCLOSURE_CACHE_SIZE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(writeConfig(t, tc.file))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_LeavesInvalidValuesForCaller(t *testing.T) {
	t.Setenv(EnvFormat, "xml")
	t.Setenv(EnvLogLevel, "bogus")
	t.Setenv(EnvCacheSize, "-1")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Format)
	assert.Equal(t, "bogus", cfg.LogLevel)
	assert.Equal(t, -1, cfg.CacheSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name            string
		cfg             Config
		wantErr         string
		wantSettingsErr bool
	}{
		{name: "defaults", cfg: Default()},
		{
			name:    "unknown format",
			cfg:     Config{Format: "xml", LogLevel: "warning", CacheSize: 1},
			wantErr: "unknown format: xml",
		},
		{
			name:            "invalid log level",
			cfg:             Config{Format: FormatText, LogLevel: "loud", CacheSize: 1},
			wantErr:         "invalid log level",
			wantSettingsErr: true,
		},
		{
			name:            "negative cache size",
			cfg:             Config{Format: FormatText, LogLevel: "warning", CacheSize: -1},
			wantErr:         "cache size must not be negative",
			wantSettingsErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}

			if tc.wantSettingsErr {
				assert.Error(t, tc.cfg.ValidateSettings())
			} else {
				assert.NoError(t, tc.cfg.ValidateSettings())
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("text"))
	assert.True(t, IsSupportedFormat("JSON"))
	assert.True(t, IsSupportedFormat("yaml"))
	assert.False(t, IsSupportedFormat("dot"))
	assert.Equal(t, "text, json, yaml", SupportedFormats())
}
