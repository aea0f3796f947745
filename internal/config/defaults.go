package config

import (
	"os"
	"path/filepath"
)

// Default configuration values
const (
	// AWS defaults
	DefaultRegion = "us-east-1"

	// Embedding CLI defaults
	DefaultEmbedTool = "s3vectors-embed"

	// Transport modes
	TransportAWS  = "aws"
	TransportStub = "stub"

	DefaultTransportMode = TransportAWS
)

// DefaultConfigDir returns the default configuration directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/s3vmcp"
	}
	return filepath.Join(home, ".config", "s3vmcp")
}
