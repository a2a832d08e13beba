package envloader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corral/internal/domain"
)

func TestFileLoader_LoadEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewFileLoader(tmpDir, log.New(io.Discard))

	content := "# comment\nZED=last\nAPP_PORT=8080\nexport GREETING=\"hello world\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "web.env"), []byte(content), 0600))

	t.Run("relative path resolves against base dir", func(t *testing.T) {
		env, err := loader.LoadEnvFile(context.Background(), "web.env")
		require.NoError(t, err)
		assert.Equal(t, []string{"APP_PORT=8080", "GREETING=hello world", "ZED=last"}, env)
	})

	t.Run("absolute path", func(t *testing.T) {
		env, err := loader.LoadEnvFile(context.Background(), filepath.Join(tmpDir, "web.env"))
		require.NoError(t, err)
		assert.Len(t, env, 3)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		_, err := loader.LoadEnvFile(context.Background(), "missing.env")
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}
