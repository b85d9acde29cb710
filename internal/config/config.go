package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Upload      UploadConfig      `yaml:"upload"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Generation  GenerationConfig  `yaml:"generation"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type UploadConfig struct {
	Dir               string   `yaml:"dir"`
	MaxSizeMB         int64    `yaml:"max_size_mb"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Threads    int    `yaml:"threads"`
	BeamSize   int    `yaml:"beam_size"`
	BestOf     int    `yaml:"best_of"`
}

type GenerationConfig struct {
	Provider string   `yaml:"provider"`
	Model    string   `yaml:"model"`
	BaseURL  string   `yaml:"base_url"`
	APIKeys  []string `yaml:"api_keys"`
}

type SummaryConfig struct {
	ChunkSize          int    `yaml:"chunk_size"`
	MinWords           int    `yaml:"min_words"`
	DefaultStrategy    string `yaml:"default_strategy"`
	DefaultQuality     string `yaml:"default_quality"`
	MeetingChunkBudget int    `yaml:"meeting_chunk_budget"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Generation.Provider != "" && c.Generation.Provider != "openai" && c.Generation.Provider != "gemini" {
		return fmt.Errorf("generation.provider must be openai or gemini, got %q", c.Generation.Provider)
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5001
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "data/uploads"
	}
	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = 100
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac", ".wma", ".webm"}
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Whisper.BeamSize == 0 {
		c.Whisper.BeamSize = 5
	}
	if c.Whisper.BestOf == 0 {
		c.Whisper.BestOf = 5
	}
	if c.Generation.Provider == "" {
		c.Generation.Provider = "openai"
	}
	if c.Generation.Model == "" {
		if c.Generation.Provider == "gemini" {
			c.Generation.Model = "gemini-2.5-flash"
		} else {
			c.Generation.Model = "flan-t5-large"
		}
	}
	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 400
	}
	if c.Summary.MinWords == 0 {
		c.Summary.MinWords = 25
	}
	if c.Summary.DefaultStrategy == "" {
		c.Summary.DefaultStrategy = "balanced"
	}
	if c.Summary.DefaultQuality == "" {
		c.Summary.DefaultQuality = "medium"
	}
	if c.Summary.MeetingChunkBudget == 0 {
		c.Summary.MeetingChunkBudget = 1500
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
