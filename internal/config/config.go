package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Config struct {
	Server struct {
		Port         string        `yaml:"port" env:"PORT"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
		MaxBodyBytes int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	} `yaml:"server"`

	Gateway struct {
		// Backend is "gemini" (API key) or "vertex" (project credentials).
		Backend         string        `yaml:"backend" env:"GATEWAY_BACKEND"`
		Model           string        `yaml:"model" env:"GEMINI_MODEL"`
		APIKey          string        `yaml:"api_key" env:"GEMINI_API_KEY"`
		Timeout         time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT"`
		SafetyThreshold string        `yaml:"safety_threshold" env:"SAFETY_THRESHOLD"`
	} `yaml:"gateway"`

	Google struct {
		ProjectID       string `yaml:"project_id" env:"PROJECT_ID"`
		CloudProject    string `yaml:"-" env:"GOOGLE_CLOUD_PROJECT"`
		Location        string `yaml:"location" env:"LOCATION"`
		CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
	} `yaml:"google"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// Load reads the optional YAML file, fills defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	applyDefaults(&cfg)
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Google.ProjectID == "" {
		cfg.Google.ProjectID = cfg.Google.CloudProject
	}
	cfg.Gateway.Backend = strings.ToLower(strings.TrimSpace(cfg.Gateway.Backend))
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	// the gateway call alone may take up to Gateway.Timeout
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 150 * time.Second
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = 20 * 1024 * 1024
	}
	if strings.TrimSpace(cfg.Gateway.Backend) == "" {
		cfg.Gateway.Backend = BackendGemini
	}
	if strings.TrimSpace(cfg.Gateway.Model) == "" {
		cfg.Gateway.Model = valueobjects.DefaultModel
	}
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = valueobjects.DefaultTimeout
	}
	if strings.TrimSpace(cfg.Gateway.SafetyThreshold) == "" {
		cfg.Gateway.SafetyThreshold = string(valueobjects.BlockNone)
	}
	if strings.TrimSpace(cfg.Google.Location) == "" {
		cfg.Google.Location = "us-central1"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func validate(cfg *Config) error {
	switch cfg.Gateway.Backend {
	case BackendGemini:
		if strings.TrimSpace(cfg.Gateway.APIKey) == "" {
			return errors.New("gateway.api_key (GEMINI_API_KEY) is required for the gemini backend")
		}
	case BackendVertex:
		if strings.TrimSpace(cfg.Google.ProjectID) == "" {
			return errors.New("google.project_id (PROJECT_ID) is required for the vertex backend")
		}
	default:
		return fmt.Errorf("unsupported gateway.backend: %q", cfg.Gateway.Backend)
	}
	if _, err := cfg.GenerationParameters(); err != nil {
		return err
	}
	return nil
}

func (c *Config) GenerationParameters() (*valueobjects.GenerationParameters, error) {
	params, err := valueobjects.NewGenerationParameters(
		c.Gateway.Model,
		valueobjects.SafetyThreshold(c.Gateway.SafetyThreshold),
		c.Gateway.Timeout,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway config: %w", err)
	}
	return params, nil
}

func (c *Config) AIClientConfig() repositories.AIClientConfig {
	return repositories.AIClientConfig{
		ProjectID:       c.Google.ProjectID,
		Location:        c.Google.Location,
		GeminiAPIKey:    c.Gateway.APIKey,
		CredentialsFile: c.Google.CredentialsFile,
	}
}
