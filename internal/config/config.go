package config

import (
	"fmt"
	"log"
	"os"

	"vault-api/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// S3Config holds settings for the S3 content-store backend
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

// StorageConfig holds content-store settings
type StorageConfig struct {
	Driver     string   `yaml:"driver"`
	UploadDir  string   `yaml:"upload_dir"`
	CreateDirs bool     `yaml:"create_dirs"`
	S3         S3Config `yaml:"s3"`
}

// ValidationConfig holds upload validation settings
type ValidationConfig struct {
	MaxFileSize string `yaml:"max_file_size"`

	// MaxFileSizeBytes is derived from MaxFileSize at load time
	MaxFileSizeBytes int64 `yaml:"-"`
}

// AuthConfig holds token issuance settings
type AuthConfig struct {
	TokenTTLMinutes int `yaml:"token_ttl_minutes"`
}

// VaultConfig holds the complete vault configuration
type VaultConfig struct {
	Storage    StorageConfig    `yaml:"storage"`
	Validation ValidationConfig `yaml:"validation"`
	Auth       AuthConfig       `yaml:"auth"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Vault VaultConfig `yaml:"vault"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from the specified path
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/vault.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Vault.Validation.MaxFileSize != "" {
		size, err := utils.ParseSizeString(cfg.Vault.Validation.MaxFileSize)
		if err != nil {
			return fmt.Errorf("invalid max_file_size: %w", err)
		}
		cfg.Vault.Validation.MaxFileSizeBytes = size
	}

	// Store config globally
	Config = cfg

	log.Println("Vault configuration loaded successfully from config/vault.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
