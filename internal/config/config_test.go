package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultRegion, cfg.AWS.Region)
	assert.Empty(t, cfg.AWS.Profile)
	assert.Equal(t, DefaultEmbedTool, cfg.EmbedCLI.Tool)
	assert.False(t, cfg.EmbedCLI.Debug)
	assert.Equal(t, TransportAWS, cfg.Transport.Mode)
}

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	assert.Contains(t, dir, "s3vmcp")
}

func TestLoadWithConfigFile(t *testing.T) {
	viper.Reset()
	cfg = nil

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
aws:
  region: eu-west-1
  profile: staging
embed_cli:
  tool: /opt/bin/s3vectors-embed
  debug: true
transport:
  mode: stub
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	err = Load(configPath)
	require.NoError(t, err)

	loaded := Get()
	assert.Equal(t, "eu-west-1", loaded.AWS.Region)
	assert.Equal(t, "staging", loaded.AWS.Profile)
	assert.Equal(t, "/opt/bin/s3vectors-embed", loaded.EmbedCLI.Tool)
	assert.True(t, loaded.EmbedCLI.Debug)
	assert.Equal(t, TransportStub, loaded.Transport.Mode)
}

func TestLoadWithAWSEnvironmentFallbacks(t *testing.T) {
	viper.Reset()
	cfg = nil

	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("AWS_PROFILE", "dev")
	t.Setenv("DEBUG_FLAG", "true")

	err := Load("")
	require.NoError(t, err)

	loaded := Get()
	assert.Equal(t, "ap-southeast-2", loaded.AWS.Region)
	assert.Equal(t, "dev", loaded.AWS.Profile)
	assert.True(t, loaded.EmbedCLI.Debug)
}

func TestLoadMissingConfigFile(t *testing.T) {
	viper.Reset()
	cfg = nil

	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("DEBUG_FLAG", "")

	err := Load("")
	require.NoError(t, err)

	loaded := Get()
	assert.Equal(t, DefaultRegion, loaded.AWS.Region)
	assert.Equal(t, DefaultEmbedTool, loaded.EmbedCLI.Tool)
	assert.Equal(t, TransportAWS, loaded.Transport.Mode)
}

func TestValidate(t *testing.T) {
	t.Run("rejects malformed region", func(t *testing.T) {
		c := DefaultConfig()
		c.AWS.Region = "-bad-region"
		assert.Error(t, c.Validate())
	})

	t.Run("rejects empty tool", func(t *testing.T) {
		c := DefaultConfig()
		c.EmbedCLI.Tool = ""
		assert.Error(t, c.Validate())
	})

	t.Run("rejects unknown transport mode", func(t *testing.T) {
		c := DefaultConfig()
		c.Transport.Mode = "memory"
		assert.Error(t, c.Validate())
	})

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})
}

func TestGet(t *testing.T) {
	cfg = nil

	c1 := Get()
	assert.NotNil(t, c1)

	c2 := Get()
	assert.Same(t, c1, c2)
}
