package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corral/internal/domain"
)

func loadFrom(t *testing.T, dir string) *Config {
	t.Helper()
	v := New()
	v.Set(KeyConfigDir, dir)
	cfg, err := Load(v)
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg := loadFrom(t, dir)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Empty(t, cfg.DockerHost)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.StopTimeout())
	assert.Empty(t, cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "docker_host: tcp://10.0.0.2:2375\nlog_level: debug\nstop_timeout: 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corral.yaml"), []byte(content), 0600))

	cfg := loadFrom(t, dir)
	assert.Equal(t, "tcp://10.0.0.2:2375", cfg.DockerHost)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.StopTimeout())
	assert.Equal(t, filepath.Join(dir, "corral.yaml"), cfg.File)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corral.yaml"), []byte("stop_timeout: 30\n"), 0600))
	t.Setenv("CORRAL_STOP_TIMEOUT", "5")
	t.Setenv("CORRAL_DOCKER_HOST", "unix:///run/podman.sock")

	cfg := loadFrom(t, dir)
	assert.Equal(t, 5*time.Second, cfg.StopTimeout())
	assert.Equal(t, "unix:///run/podman.sock", cfg.DockerHost)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CORRAL_DOCKER_HOST", "unix:///from/env.sock")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config-dir", "", "")
	flags.String("docker-host", "", "")
	require.NoError(t, flags.Parse([]string{"--config-dir", dir, "--docker-host", "tcp://flag:2375"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, "tcp://flag:2375", cfg.DockerHost)
}

func TestLoad_UnsetFlagKeepsDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("docker-host", "", "")
	require.NoError(t, flags.Parse(nil))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	v.Set(KeyConfigDir, t.TempDir())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Empty(t, cfg.DockerHost)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative stop timeout", content: "stop_timeout: -1\n"},
		{name: "unknown log level", content: "log_level: chatty\n"},
		{name: "malformed yaml", content: "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "corral.yaml"), []byte(tt.content), 0600))

			v := New()
			v.Set(KeyConfigDir, dir)
			_, err := Load(v)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", ".config", "corral"), DefaultConfigDir("/home/u", "linux"))
	assert.Equal(t, filepath.Join("/home/u", ".corral"), DefaultConfigDir("/home/u", "windows"))
}
