// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envKeyReplacer maps config keys like llm.api_key to TENDERLENS_LLM_API_KEY
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds the tenderlens server configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Upload UploadConfig `mapstructure:"upload"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	LogFile string `mapstructure:"log_file"`
}

// LLMConfig holds the remote chat-completion endpoint settings
type LLMConfig struct {
	BaseURL               string `mapstructure:"base_url"`
	APIKey                string `mapstructure:"api_key"`
	Model                 string `mapstructure:"model"`
	MaxRetries            int    `mapstructure:"max_retries"`
	RetryDelaySeconds     int    `mapstructure:"retry_delay_seconds"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// RetryDelay returns the fixed wait between rate-limited attempts
func (c LLMConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// RequestTimeout returns the per-analysis deadline
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	// Set default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.log_file", "./tenderlens.log")
	viper.SetDefault("llm.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("llm.model", "deepseek-chat")
	viper.SetDefault("llm.max_retries", 3)
	viper.SetDefault("llm.retry_delay_seconds", 60)
	viper.SetDefault("llm.request_timeout_seconds", 300)
	viper.SetDefault("upload.max_bytes", 20<<20)

	// If config path is provided, use it
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Otherwise, look in home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir := filepath.Join(home, ".tenderlens")
		configFile := filepath.Join(configDir, "config.yaml")

		// Create config directory if it doesn't exist
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		// If config file doesn't exist, create default one
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			if err := generateDefaultConfig(configFile); err != nil {
				return nil, fmt.Errorf("failed to generate default config: %w", err)
			}
		}

		viper.SetConfigFile(configFile)
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No config file found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Allow environment variables (TENDERLENS_LLM_API_KEY etc.)
	viper.SetEnvPrefix("TENDERLENS")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration before the analyst is constructed
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set it in the config file or TENDERLENS_LLM_API_KEY)")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.LLM.MaxRetries < 1 {
		return fmt.Errorf("llm.max_retries must be at least 1, got %d", c.LLM.MaxRetries)
	}
	if c.LLM.RetryDelaySeconds < 0 {
		return fmt.Errorf("llm.retry_delay_seconds must not be negative, got %d", c.LLM.RetryDelaySeconds)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive, got %d", c.Upload.MaxBytes)
	}
	return nil
}

// generateDefaultConfig creates a default configuration file
func generateDefaultConfig(configFile string) error {
	defaultConfig := `# Tenderlens Server Configuration

server:
  port: 8080
  log_file: "./tenderlens.log"

llm:
  base_url: "https://api.deepseek.com/v1"  # OpenAI-compatible chat completion endpoint
  api_key: ""                              # API key (or set TENDERLENS_LLM_API_KEY)
  model: "deepseek-chat"
  max_retries: 3            # total attempts per analysis
  retry_delay_seconds: 60   # fixed wait after a rate-limit failure
  request_timeout_seconds: 300

upload:
  max_bytes: 20971520  # 20 MiB
`

	// Create directory if needed
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}

	return os.WriteFile(configFile, []byte(defaultConfig), 0644)
}
