// Package config handles configuration loading and validation for s3vmcp.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/kgribble/s3vmcp/internal/schema"
)

// Config represents the complete s3vmcp configuration.
type Config struct {
	AWS       AWSConfig       `mapstructure:"aws"`
	EmbedCLI  EmbedCLIConfig  `mapstructure:"embed_cli"`
	Transport TransportConfig `mapstructure:"transport"`
}

// AWSConfig configures how the S3 Vectors client and the embedding CLI
// reach AWS. Profile is optional; static credentials are a development
// convenience and take precedence over the shared profile when set.
type AWSConfig struct {
	Region          string `mapstructure:"region"`
	Profile         string `mapstructure:"profile"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// EmbedCLIConfig configures the external s3vectors-embed invocation.
type EmbedCLIConfig struct {
	Tool  string `mapstructure:"tool"`
	Debug bool   `mapstructure:"debug"`
}

// TransportConfig selects the S3 Vectors transport implementation.
type TransportConfig struct {
	Mode string `mapstructure:"mode"`
}

// Global configuration instance
var cfg *Config

// Get returns the current configuration.
func Get() *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		AWS: AWSConfig{
			Region: DefaultRegion,
		},
		EmbedCLI: EmbedCLIConfig{
			Tool: DefaultEmbedTool,
		},
		Transport: TransportConfig{
			Mode: DefaultTransportMode,
		},
	}
}

// Load reads configuration from file and environment variables.
func Load(configFile string) error {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(DefaultConfigDir())
		viper.AddConfigPath(".")
	}

	// Environment variables
	viper.SetEnvPrefix("S3VMCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("No config file found, using defaults")
	} else {
		log.Debug("Loaded config from", "file", viper.ConfigFileUsed())
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}

	loadAWSEnv()

	return cfg.Validate()
}

// setDefaults sets default values in viper.
func setDefaults() {
	viper.SetDefault("aws.region", DefaultRegion)
	viper.SetDefault("embed_cli.tool", DefaultEmbedTool)
	viper.SetDefault("embed_cli.debug", false)
	viper.SetDefault("transport.mode", DefaultTransportMode)
}

// loadAWSEnv applies the standard AWS environment variables when the
// config file leaves the corresponding keys unset. DEBUG_FLAG mirrors the
// embedding CLI's own convention.
func loadAWSEnv() {
	if cfg.AWS.Region == DefaultRegion {
		if region := os.Getenv("AWS_REGION"); region != "" {
			cfg.AWS.Region = region
		}
	}
	if cfg.AWS.Profile == "" {
		if profile := os.Getenv("AWS_PROFILE"); profile != "" {
			cfg.AWS.Profile = profile
		}
	}
	if !cfg.EmbedCLI.Debug {
		if flag := os.Getenv("DEBUG_FLAG"); flag != "" && flag != "0" && flag != "false" {
			cfg.EmbedCLI.Debug = true
		}
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if !schema.RegionPattern.MatchString(c.AWS.Region) {
		return fmt.Errorf("invalid aws.region %q", c.AWS.Region)
	}
	if c.EmbedCLI.Tool == "" {
		return fmt.Errorf("embed_cli.tool must not be empty")
	}
	switch c.Transport.Mode {
	case TransportAWS, TransportStub:
	default:
		return fmt.Errorf("transport.mode must be %q or %q, got %q", TransportAWS, TransportStub, c.Transport.Mode)
	}
	return nil
}

// ConfigFilePath returns the path of the loaded config file, or empty string if none.
func ConfigFilePath() string {
	return viper.ConfigFileUsed()
}
