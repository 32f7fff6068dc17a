package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  postgresDsn: "host=db user=postgres dbname=tapi"
  redisAddr: "redis:6379"
hypermedia:
  linkRelations: "https://example.com/rels/"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Listen)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "redis:6379", cfg.Server.RedisAddr)
	assert.Equal(t, "https://example.com/rels/", cfg.Hypermedia.LinkRelations)
	assert.Equal(t, "/api/profiles/error/", cfg.Hypermedia.ErrorProfile)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing dsn":       "server:\n  listen: \":80\"\n",
		"relative base url": "server:\n  postgresDsn: x\n  baseURL: \"/api\"\n",
		"trace no endpoint": "server:\n  postgresDsn: x\n  enableTrace: true\n",
		"bad log level":     "server:\n  postgresDsn: x\n  logLevel: loud\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
