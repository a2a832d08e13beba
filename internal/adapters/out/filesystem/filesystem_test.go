package filesystem

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

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions(name string) *domain.ContainerOptions {
	opts := domain.DefaultContainerOptions()
	opts.Name = name
	opts.Image = "nginx:1.25"
	opts.Ports = []string{"8080:80"}
	return opts
}

func TestNewDefinitionStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewDefinitionStore(tmpDir, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.DirExists(t, filepath.Join(tmpDir, "containers"))
}

func TestDefinitionStore_List(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewDefinitionStore(tmpDir, testLogger())
	require.NoError(t, err)

	dir := filepath.Join(tmpDir, "containers")
	for _, f := range []string{"web.yaml", "db.yaml", "notes.txt", ".web.yaml.123.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("{}"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0750))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "web"}, names)
}

func TestDefinitionStore_WriteAndReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewDefinitionStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	opts := testOptions("web")
	opts.Mounts = []string{"/srv:/data:ro"}
	opts.ImageInsecure = true
	path := store.Path("web")

	require.NoError(t, store.WriteFile(ctx, path, opts))

	raw, err := store.ReadFile(ctx, path)
	require.NoError(t, err)

	back, err := domain.ValidateOptions(raw)
	require.NoError(t, err)
	assert.Equal(t, opts, back)

	// writing the re-read record produces the same bytes
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, store.WriteFile(ctx, path, back))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestDefinitionStore_ReadFile_Errors(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	store, err := NewDefinitionStore(tmpDir, testLogger())
	require.NoError(t, err)

	_, err = store.ReadFile(ctx, filepath.Join(tmpDir, "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	bad := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- just\n- a list\n"), 0600))
	_, err = store.ReadFile(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	empty := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	raw, err := store.ReadFile(ctx, empty)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestDefinitionStore_StageCommitAndDiscard(t *testing.T) {
	ctx := context.Background()
	store, err := NewDefinitionStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	staged, err := store.Stage(ctx, testOptions("web"))
	require.NoError(t, err)
	assert.NoFileExists(t, store.Path("web"))

	require.NoError(t, staged.Commit())
	assert.FileExists(t, store.Path("web"))
	// a second call is a no-op
	require.NoError(t, staged.Discard())
	assert.FileExists(t, store.Path("web"))

	discarded, err := store.Stage(ctx, testOptions("db"))
	require.NoError(t, err)
	require.NoError(t, discarded.Discard())
	assert.NoFileExists(t, store.Path("db"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, names)
}

func TestDefinitionStore_StageRejectsEscapingName(t *testing.T) {
	store, err := NewDefinitionStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	_, err = store.Stage(context.Background(), testOptions("../escape"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestGroupStore_LoadMissingDocument(t *testing.T) {
	store, err := NewGroupStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	groups, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, err := NewGroupStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	groups := map[string]*domain.Group{
		"apps": {Name: "apps", Master: "m", Members: []string{"m", "a", "b"}},
		"misc": {Name: "misc", Members: []string{}},
	}
	require.NoError(t, store.Save(ctx, groups))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "master: null")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, groups, loaded)
}

func TestGroupStore_StageDiscardKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	store, err := NewGroupStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	original := map[string]*domain.Group{"apps": {Name: "apps", Members: []string{"a"}}}
	require.NoError(t, store.Save(ctx, original))

	staged, err := store.Stage(ctx, map[string]*domain.Group{"apps": {Name: "apps", Members: []string{"a", "b"}}})
	require.NoError(t, err)
	require.NoError(t, staged.Discard())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestGroupStore_LoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewGroupStore(tmpDir, testLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("apps: [unclosed"), 0600))
	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
