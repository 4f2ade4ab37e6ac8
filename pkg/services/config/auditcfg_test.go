package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAuditCfg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".auditcfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeAuditCfg(t, `[DEFAULT]
host = https://extractor.example.gov.br
token = abc

[homolog]
host = https://homolog.example.gov.br
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Contains(t, profiles, "DEFAULT")
	assert.Contains(t, profiles, "homolog")
}

func TestRegistry_GetProfile(t *testing.T) {
	path := writeAuditCfg(t, `[DEFAULT]
host = https://extractor.example.gov.br
token = abc
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	t.Run("returns host and token", func(t *testing.T) {
		profile, err := registry.GetProfile(context.Background(), "DEFAULT")
		require.NoError(t, err)
		assert.Equal(t, "https://extractor.example.gov.br", profile.Host)
		assert.Equal(t, "abc", profile.Token)
	})

	t.Run("unknown profile is an error", func(t *testing.T) {
		_, err := registry.GetProfile(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
