package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the working directory for one test and restores it afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigFailsWhenNoFileFound(t *testing.T) {
	chdir(t, t.TempDir())
	config = new(Config)
	t.Cleanup(func() { config = nil })

	require.Error(t, LoadConfig())
}

func TestLoadConfigReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	toml := `
[mainConfig]
appName = "stokvel"
port = 5000

[jwtConfig]
secret = "file-secret"
tokenExpiryHours = 24
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.toml"), []byte(toml), 0o644))
	chdir(t, dir)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "8080")
	config = new(Config)
	t.Cleanup(func() { config = nil })

	require.NoError(t, LoadConfig())
	assert.Equal(t, "stokvel", config.MainConfig.AppName)
	assert.Equal(t, "env-secret", config.JWTConfig.Secret, "environment beats the file")
	assert.Equal(t, 8080, config.MainConfig.Port)
	assert.Equal(t, 24, config.JWTConfig.TokenExpiryHours)
}
