package group

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corral/internal/adapters/out/filesystem"
	"github.com/bnema/corral/internal/boundaries/out/mocks"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

func testContext() context.Context {
	return logging.WithLogger(context.Background(), log.New(io.Discard))
}

func newFileService(t *testing.T) (*Service, *filesystem.GroupStore) {
	t.Helper()
	store, err := filesystem.NewGroupStore(t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)

	svc, err := NewService(testContext(), store)
	require.NoError(t, err)
	return svc, store
}

func TestService_AddAndReload(t *testing.T) {
	ctx := testContext()
	svc, store := newFileService(t)

	require.NoError(t, svc.Add(ctx, "web", nil))
	require.NoError(t, svc.Add(ctx, "db", &domain.Group{Master: "pg", Members: []string{"pg"}}))

	assert.Equal(t, []string{"db", "web"}, svc.List(ctx))
	assert.True(t, svc.Exists("web"))
	assert.False(t, svc.Exists("cache"))

	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)

	db, err := reloaded.Get(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, "db", db.Name)
	assert.Equal(t, "pg", db.Master)
	assert.Equal(t, []string{"pg"}, db.Members)

	web, err := reloaded.Get(ctx, "web")
	require.NoError(t, err)
	assert.False(t, web.HasMaster())
	assert.Empty(t, web.Members)
}

func TestService_AddExistingIsNoop(t *testing.T) {
	ctx := testContext()
	svc, _ := newFileService(t)

	require.NoError(t, svc.Add(ctx, "web", &domain.Group{Members: []string{"a"}}))
	require.NoError(t, svc.Add(ctx, "web", &domain.Group{Members: []string{"b"}}))

	g, err := svc.Get(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, g.Members)
}

func TestService_AddInvalidName(t *testing.T) {
	svc, _ := newFileService(t)

	err := svc.Add(testContext(), "../evil", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Empty(t, svc.List(testContext()))
}

func TestService_AddRollsBackOnSaveFailure(t *testing.T) {
	ctx := testContext()
	store := mocks.NewMockGroupStore(t)
	store.EXPECT().Load(mock.Anything).Return(map[string]*domain.Group{}, nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	err = svc.Add(ctx, "web", nil)
	assert.EqualError(t, err, "disk full")
	assert.False(t, svc.Exists("web"))
}

func TestService_GetReturnsCopy(t *testing.T) {
	ctx := testContext()
	svc, _ := newFileService(t)
	require.NoError(t, svc.Add(ctx, "web", &domain.Group{Members: []string{"a"}}))

	g, err := svc.Get(ctx, "web")
	require.NoError(t, err)
	g.Members = append(g.Members, "b")

	again, err := svc.Get(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Members)
}

func TestService_GetUnknown(t *testing.T) {
	svc, _ := newFileService(t)

	_, err := svc.Get(testContext(), "nope")
	assert.ErrorIs(t, err, domain.ErrGroupNotDefined)
	assert.True(t, domain.IsDockerError(err))
}

func TestService_SetMaster(t *testing.T) {
	ctx := testContext()
	svc, store := newFileService(t)
	require.NoError(t, svc.Add(ctx, "web", &domain.Group{Members: []string{"a"}}))

	require.NoError(t, svc.SetMaster(ctx, "web", "m"))

	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)
	g, err := reloaded.Get(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, "m", g.Master)
	assert.Equal(t, []string{"a"}, g.Members)
}

func TestService_SetMasterUnknownGroup(t *testing.T) {
	svc, _ := newFileService(t)

	err := svc.SetMaster(testContext(), "nope", "m")
	assert.ErrorIs(t, err, domain.ErrGroupNotDefined)
}

func TestService_SetMasterRollsBackOnSaveFailure(t *testing.T) {
	ctx := testContext()
	store := mocks.NewMockGroupStore(t)
	store.EXPECT().Load(mock.Anything).Return(map[string]*domain.Group{
		"web": {Name: "web", Master: "old", Members: []string{}},
	}, nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	require.Error(t, svc.SetMaster(ctx, "web", "new"))
	g, err := svc.Get(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, "old", g.Master)
}

func TestService_StageMember_CommitAndRevert(t *testing.T) {
	ctx := testContext()
	svc, store := newFileService(t)
	require.NoError(t, svc.Add(ctx, "web", nil))

	change, err := svc.StageMember(ctx, "web", "nginx")
	require.NoError(t, err)
	assert.True(t, change.Changed())

	// Nothing is visible before commit.
	g, _ := svc.Get(ctx, "web")
	assert.Empty(t, g.Members)

	require.NoError(t, change.Commit(ctx))
	g, _ = svc.Get(ctx, "web")
	assert.Equal(t, []string{"nginx"}, g.Members)

	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)
	g, _ = reloaded.Get(ctx, "web")
	assert.Equal(t, []string{"nginx"}, g.Members)

	require.NoError(t, change.Revert(ctx))
	g, _ = svc.Get(ctx, "web")
	assert.Empty(t, g.Members)

	reloaded, err = NewService(ctx, store)
	require.NoError(t, err)
	g, _ = reloaded.Get(ctx, "web")
	assert.Empty(t, g.Members)
}

func TestService_StageMember_Discard(t *testing.T) {
	ctx := testContext()
	svc, store := newFileService(t)
	require.NoError(t, svc.Add(ctx, "web", nil))

	change, err := svc.StageMember(ctx, "web", "nginx")
	require.NoError(t, err)
	require.NoError(t, change.Discard(ctx))

	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)
	g, _ := reloaded.Get(ctx, "web")
	assert.Empty(t, g.Members)
}

func TestService_StageMember_AlreadyMember(t *testing.T) {
	ctx := testContext()
	store := mocks.NewMockGroupStore(t)
	store.EXPECT().Load(mock.Anything).Return(map[string]*domain.Group{
		"web": {Name: "web", Members: []string{"nginx"}},
	}, nil)

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	change, err := svc.StageMember(ctx, "web", "nginx")
	require.NoError(t, err)
	assert.False(t, change.Changed())
	assert.NoError(t, change.Commit(ctx))
	assert.NoError(t, change.Revert(ctx))
}

func TestService_StageMember_MissingGroup(t *testing.T) {
	svc, _ := newFileService(t)

	_, err := svc.StageMember(testContext(), "web", "nginx")
	assert.ErrorIs(t, err, domain.ErrGroupMissing)
	assert.True(t, domain.IsConfigError(err))
}

func TestService_StageMember_CommitFailureKeepsState(t *testing.T) {
	ctx := testContext()
	store := mocks.NewMockGroupStore(t)
	staged := mocks.NewMockStagedWrite(t)

	store.EXPECT().Load(mock.Anything).Return(map[string]*domain.Group{
		"web": {Name: "web", Members: []string{}},
	}, nil)
	store.EXPECT().Stage(mock.Anything, mock.Anything).Return(staged, nil)
	staged.EXPECT().Commit().Return(errors.New("rename failed"))
	staged.EXPECT().Discard().Return(nil)

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	change, err := svc.StageMember(ctx, "web", "nginx")
	require.NoError(t, err)
	require.Error(t, change.Commit(ctx))
	require.NoError(t, change.Revert(ctx))

	g, _ := svc.Get(ctx, "web")
	assert.Empty(t, g.Members)
}
