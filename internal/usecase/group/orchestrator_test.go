package group

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corral/internal/boundaries/in"
	inmocks "github.com/bnema/corral/internal/boundaries/in/mocks"
	"github.com/bnema/corral/internal/domain"
)

type recorder struct {
	calls []string
}

func (r *recorder) add(call string) {
	r.calls = append(r.calls, call)
}

// newHandle returns a handle that records every lifecycle call it receives.
// failOn names the call that should fail.
func newHandle(t *testing.T, name string, rec *recorder, failOn string) *inmocks.MockContainerHandle {
	h := inmocks.NewMockContainerHandle(t)
	h.EXPECT().Name().Return(name).Maybe()

	result := func(action string) error {
		rec.add(action + " " + name)
		if action+" "+name == failOn {
			return errors.New("boom")
		}
		return nil
	}

	h.EXPECT().Start(mock.Anything).RunAndReturn(func(_ context.Context) error { return result("start") }).Maybe()
	h.EXPECT().Stop(mock.Anything).RunAndReturn(func(_ context.Context) error { return result("stop") }).Maybe()
	h.EXPECT().Remove(mock.Anything).RunAndReturn(func(_ context.Context) error { return result("remove") }).Maybe()
	h.EXPECT().Update(mock.Anything).RunAndReturn(func(_ context.Context) error { return result("update") }).Maybe()
	return h
}

func newOrchestrator(t *testing.T, group *domain.Group, rec *recorder, failOn string) *Orchestrator {
	containers := inmocks.NewMockContainerService(t)
	groups := inmocks.NewMockGroupService(t)

	groups.EXPECT().Get(mock.Anything, group.Name).Return(group, nil).Maybe()

	names := append([]string{}, group.Members...)
	if group.HasMaster() && !group.HasMember(group.Master) {
		names = append(names, group.Master)
	}
	for _, name := range names {
		h := newHandle(t, name, rec, failOn)
		containers.EXPECT().Get(mock.Anything, name).Return(in.ContainerHandle(h), nil).Maybe()
	}

	return NewOrchestrator(containers, groups)
}

func testGroup() *domain.Group {
	return &domain.Group{Name: "web", Master: "m", Members: []string{"m", "a", "b"}}
}

func TestOrchestrator_Resolve(t *testing.T) {
	o := newOrchestrator(t, testGroup(), &recorder{}, "")

	plan, err := o.Resolve(testContext(), "web")
	require.NoError(t, err)
	require.NotNil(t, plan.Master)
	assert.Equal(t, "m", plan.Master.Name())
	require.Len(t, plan.Members, 2)
	assert.Equal(t, "a", plan.Members[0].Name())
	assert.Equal(t, "b", plan.Members[1].Name())
}

func TestOrchestrator_Start_MasterFirst(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, testGroup(), rec, "")

	require.NoError(t, o.Start(testContext(), "web"))
	assert.Equal(t, []string{"start m", "start a", "start b"}, rec.calls)
}

func TestOrchestrator_Start_NoMaster(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, &domain.Group{Name: "web", Members: []string{"a", "b"}}, rec, "")

	require.NoError(t, o.Start(testContext(), "web"))
	assert.Equal(t, []string{"start a", "start b"}, rec.calls)
}

func TestOrchestrator_Start_MasterNotListed(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, &domain.Group{Name: "web", Master: "m", Members: []string{"a"}}, rec, "")

	require.NoError(t, o.Start(testContext(), "web"))
	assert.Equal(t, []string{"start m", "start a"}, rec.calls)
}

func TestOrchestrator_Stop_MasterLast(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, testGroup(), rec, "")

	require.NoError(t, o.Stop(testContext(), "web", false))
	assert.Equal(t, []string{"stop a", "stop b", "stop m"}, rec.calls)
}

func TestOrchestrator_Stop_WithRemove(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, testGroup(), rec, "")

	require.NoError(t, o.Stop(testContext(), "web", true))
	assert.Equal(t, []string{
		"stop a", "remove a",
		"stop b", "remove b",
		"stop m", "remove m",
	}, rec.calls)
}

func TestOrchestrator_Update(t *testing.T) {
	rec := &recorder{}
	o := newOrchestrator(t, testGroup(), rec, "")

	require.NoError(t, o.Update(testContext(), "web"))
	assert.Equal(t, []string{
		"update m", "update a", "update b",
		"stop a", "remove a",
		"stop b", "remove b",
		"stop m", "remove m",
		"start m", "start a", "start b",
	}, rec.calls)
}

func TestOrchestrator_HaltsOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		run     func(o *Orchestrator) error
		failOn  string
		want    []string
		wantMsg string
	}{
		{
			name:    "start",
			run:     func(o *Orchestrator) error { return o.Start(testContext(), "web") },
			failOn:  "start a",
			want:    []string{"start m", "start a"},
			wantMsg: "start 'a': boom",
		},
		{
			name:    "stop",
			run:     func(o *Orchestrator) error { return o.Stop(testContext(), "web", true) },
			failOn:  "remove a",
			want:    []string{"stop a", "remove a"},
			wantMsg: "remove 'a': boom",
		},
		{
			name:    "update pull",
			run:     func(o *Orchestrator) error { return o.Update(testContext(), "web") },
			failOn:  "update a",
			want:    []string{"update m", "update a"},
			wantMsg: "update 'a': boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			o := newOrchestrator(t, testGroup(), rec, tt.failOn)

			err := tt.run(o)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.want, rec.calls)
		})
	}
}

func TestOrchestrator_UnknownGroup(t *testing.T) {
	containers := inmocks.NewMockContainerService(t)
	groups := inmocks.NewMockGroupService(t)
	groups.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.ErrGroupNotDefined)

	o := NewOrchestrator(containers, groups)
	err := o.Start(testContext(), "nope")
	assert.ErrorIs(t, err, domain.ErrGroupNotDefined)
}

func TestOrchestrator_UndefinedMember(t *testing.T) {
	containers := inmocks.NewMockContainerService(t)
	groups := inmocks.NewMockGroupService(t)
	groups.EXPECT().Get(mock.Anything, "web").Return(&domain.Group{Name: "web", Members: []string{"ghost"}}, nil)
	containers.EXPECT().Get(mock.Anything, "ghost").Return(nil, domain.ErrContainerNotDefined)

	o := NewOrchestrator(containers, groups)
	err := o.Start(testContext(), "web")
	assert.ErrorIs(t, err, domain.ErrContainerNotDefined)
}

func TestOrchestrator_Restart_Unsupported(t *testing.T) {
	o := NewOrchestrator(inmocks.NewMockContainerService(t), inmocks.NewMockGroupService(t))

	err := o.Restart(testContext(), "web")
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestOrchestrator_SetMaster(t *testing.T) {
	containers := inmocks.NewMockContainerService(t)
	groups := inmocks.NewMockGroupService(t)
	containers.EXPECT().Exists("m").Return(true)
	groups.EXPECT().SetMaster(mock.Anything, "web", "m").Return(nil)

	o := NewOrchestrator(containers, groups)
	assert.NoError(t, o.SetMaster(testContext(), "web", "m"))
}

func TestOrchestrator_SetMaster_UndefinedContainer(t *testing.T) {
	containers := inmocks.NewMockContainerService(t)
	groups := inmocks.NewMockGroupService(t)
	containers.EXPECT().Exists("ghost").Return(false)

	o := NewOrchestrator(containers, groups)
	err := o.SetMaster(testContext(), "web", "ghost")
	assert.ErrorIs(t, err, domain.ErrContainerNotDefined)
}
