package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfigFrom(t *testing.T) {
	t.Run("reads the env file and applies defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "SESSION_SECRET=" + testSecret + "\nDB_NAME=orders\nPORT=9090\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		config, err := LoadConfigFrom(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", config.App.Port)
		assert.Equal(t, "orders", config.Database.Name)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 24*time.Hour, config.Session.Expiry())
		assert.Equal(t, 30*time.Second, config.RoleCache.TTL())
		assert.Equal(t, int64(5<<20), config.Media.MaxUploadBytes())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SESSION_SECRET="+testSecret+"\nPORT=9090\n"), 0o600))
		t.Setenv("PORT", "7070")

		config, err := LoadConfigFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", config.App.Port)
	})

	t.Run("missing file falls back to the environment", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", testSecret)

		config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "order-management", config.App.Name)
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "short")

		_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.env"))
		assert.Error(t, err)
	})
}
