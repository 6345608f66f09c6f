package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

// clearEnv isolates a test from variables set on the machine running it.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "MAX_BODY_BYTES",
		"GATEWAY_BACKEND", "GEMINI_MODEL", "GEMINI_API_KEY", "GATEWAY_TIMEOUT", "SAFETY_THRESHOLD",
		"PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "LOCATION", "GOOGLE_APPLICATION_CREDENTIALS",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(20*1024*1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, BackendGemini, cfg.Gateway.Backend)
	assert.Equal(t, valueobjects.DefaultModel, cfg.Gateway.Model)
	assert.Equal(t, valueobjects.DefaultTimeout, cfg.Gateway.Timeout)
	assert.Equal(t, "BLOCK_NONE", cfg.Gateway.SafetyThreshold)
	assert.Equal(t, "us-central1", cfg.Google.Location)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9000"
gateway:
  backend: vertex
  timeout: 45s
  safety_threshold: block_only_high
google:
  project_id: from-file
  location: europe-west4
logging:
  format: json
`)
	t.Setenv("PORT", "7000")
	t.Setenv("LOCATION", "asia-northeast1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, BackendVertex, cfg.Gateway.Backend)
	assert.Equal(t, 45*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "from-file", cfg.Google.ProjectID)
	assert.Equal(t, "asia-northeast1", cfg.Google.Location)
	assert.Equal(t, "json", cfg.Logging.Format)

	params, err := cfg.GenerationParameters()
	require.NoError(t, err)
	assert.Equal(t, valueobjects.BlockOnlyHigh, params.SafetyThreshold())
}

func TestLoad_ProjectFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GATEWAY_BACKEND", "vertex")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "cloud-project")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cloud-project", cfg.Google.ProjectID)

	t.Setenv("PROJECT_ID", "explicit")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Google.ProjectID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "gemini without api key",
			env:     map[string]string{},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "vertex without project",
			env:     map[string]string{"GATEWAY_BACKEND": "vertex"},
			wantErr: "PROJECT_ID",
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"GATEWAY_BACKEND": "openai"},
			wantErr: "unsupported gateway.backend",
		},
		{
			name:    "unknown safety threshold",
			env:     map[string]string{"GEMINI_API_KEY": "key", "SAFETY_THRESHOLD": "BLOCK_ALL"},
			wantErr: "unsupported safety threshold",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"GEMINI_API_KEY": "key", "GATEWAY_TIMEOUT": "soon"},
			wantErr: "failed to parse environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestConfig_AIClientConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("PROJECT_ID", "project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/key.json")

	cfg, err := Load("")
	require.NoError(t, err)

	client := cfg.AIClientConfig()
	assert.Equal(t, "key", client.GeminiAPIKey)
	assert.Equal(t, "project", client.ProjectID)
	assert.Equal(t, "us-central1", client.Location)
	assert.Equal(t, "/tmp/key.json", client.CredentialsFile)
}
