package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	// Working-day planning preferences
	WorkStart     string `yaml:"work_start" json:"work_start"`         // "HH:MM" start of the working day
	WorkEnd       string `yaml:"work_end" json:"work_end"`             // "HH:MM" end of the working day
	BufferMinutes int    `yaml:"buffer_minutes" json:"buffer_minutes"` // Gap between scheduled tasks

	// Server configuration
	Port string `yaml:"port" json:"port"` // HTTP API port

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".assistant", "logs", "assistant.log")
	}

	return &Config{
		WorkStart:     getEnv("ASSISTANT_WORK_START", "09:00"),
		WorkEnd:       getEnv("ASSISTANT_WORK_END", "18:00"),
		BufferMinutes: 0,
		Port:          getEnv("ASSISTANT_PORT", "8080"),
		LogLevel:      getEnv("ASSISTANT_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("ASSISTANT_LOG_FILE", logPath),
		LogConsole:    getEnv("ASSISTANT_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// configPath returns the path to ~/.assistant/config.yaml
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".assistant", "config.yaml"), nil
}

// Load loads config from ~/.assistant/config.yaml
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	// Return defaults if no config exists yet
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.assistant/config.yaml
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
