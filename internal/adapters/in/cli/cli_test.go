package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/corral/internal/domain"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command against dir. The docker host points at a
// socket that does not exist so nothing reaches a real engine.
func runCLI(t *testing.T, dir string, s *session, args ...string) result {
	t.Helper()
	if s == nil {
		s = newSession()
		s.isTerminal = func() bool { return false }
	}

	cmd := newRootCmd(s, VersionInfo{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--config-dir", dir,
		"--docker-host", "unix://" + filepath.Join(dir, "missing.sock"),
	}, args...))

	err := s.run(context.Background(), cmd)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definition.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestContainerDefineAndList(t *testing.T) {
	dir := t.TempDir()

	res := runCLI(t, dir, nil, "container", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No containers defined")

	res = runCLI(t, dir, nil, "container", "define", writeDefinition(t, "name: web\nimage: nginx\ntag: \"1.25\"\n"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Defined container 'web'")
	assert.FileExists(t, filepath.Join(dir, "containers", "web.yaml"))

	res = runCLI(t, dir, nil, "container", "ls")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "web")
	assert.Contains(t, res.stdout, "nginx (tag 1.25)")
}

func TestContainerDefine_Invalid(t *testing.T) {
	res := runCLI(t, t.TempDir(), nil, "container", "define", writeDefinition(t, "name: web\n"))

	assert.ErrorIs(t, res.err, domain.ErrMissingField)
	assert.True(t, domain.IsConfigError(res.err))
}

func TestContainerDefine_Twice(t *testing.T) {
	dir := t.TempDir()
	src := writeDefinition(t, "name: web\nimage: nginx\n")

	require.NoError(t, runCLI(t, dir, nil, "container", "define", src).err)
	res := runCLI(t, dir, nil, "container", "define", src)
	assert.ErrorIs(t, res.err, domain.ErrContainerAlreadyDefined)
}

func TestContainerStart_NotDefined(t *testing.T) {
	res := runCLI(t, t.TempDir(), nil, "container", "start", "ghost")

	assert.ErrorIs(t, res.err, domain.ErrContainerNotDefined)
	assert.True(t, domain.IsDockerError(res.err))
}

func TestFailedCommandClosesKernel(t *testing.T) {
	s := newSession()
	s.isTerminal = func() bool { return false }

	res := runCLI(t, t.TempDir(), s, "container", "stop", "ghost")

	require.ErrorIs(t, res.err, domain.ErrContainerNotDefined)
	assert.Nil(t, s.kernel)
}

func TestSessionClose_WithoutKernel(t *testing.T) {
	assert.NoError(t, newSession().close())
}

func TestContainerTagThenDump(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "container", "define", writeDefinition(t, "name: web\nimage: nginx\n")).err)

	res := runCLI(t, dir, nil, "container", "tag", "web", "v2")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Tagged container 'web' with 'v2'")

	work := t.TempDir()
	t.Chdir(work)

	res = runCLI(t, dir, nil, "container", "dump", "web")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, filepath.Join(work, "web.yaml"))

	data, err := os.ReadFile(filepath.Join(work, "web.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tag: v2")
}

func TestContainerTag_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "container", "define", writeDefinition(t, "name: web\nimage: nginx\n")).err)

	res := runCLI(t, dir, nil, "container", "tag", "web", "not a tag")
	assert.True(t, domain.IsConfigError(res.err))
}

func TestGroupCommands(t *testing.T) {
	dir := t.TempDir()

	res := runCLI(t, dir, nil, "group", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No groups defined")

	res = runCLI(t, dir, nil, "group", "define", "web")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Defined group 'web'")

	require.NoError(t, runCLI(t, dir, nil, "container", "define", writeDefinition(t, "name: db\nimage: postgres\ngroup: web\n")).err)
	require.NoError(t, runCLI(t, dir, nil, "container", "define", writeDefinition(t, "name: app\nimage: nginx\ngroup: web\n")).err)

	res = runCLI(t, dir, nil, "group", "set-master", "web", "db")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Set master of 'web' to 'db'")

	res = runCLI(t, dir, nil, "group", "info", "web")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Group: web")
	assert.Contains(t, res.stdout, "Master:")
	assert.Contains(t, res.stdout, "db")
	assert.Contains(t, res.stdout, "app")

	res = runCLI(t, dir, nil, "group", "ls")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "web")
}

func TestGroupInfo_NoMembers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "group", "define", "empty").err)

	res := runCLI(t, dir, nil, "group", "info", "empty")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "none defined")
	assert.NotContains(t, res.stdout, "Master:")
}

func TestGroupSetMaster_UndefinedContainer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "group", "define", "web").err)

	res := runCLI(t, dir, nil, "group", "set-master", "web", "ghost")
	assert.ErrorIs(t, res.err, domain.ErrContainerNotDefined)
}

func TestGroupRestart_Unsupported(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "group", "define", "web").err)

	res := runCLI(t, dir, nil, "group", "restart", "web")
	assert.ErrorIs(t, res.err, domain.ErrUnsupported)
}

func TestGroupUpdate_Cancelled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCLI(t, dir, nil, "group", "define", "web").err)

	var asked string
	s := newSession()
	s.isTerminal = func() bool { return true }
	s.confirm = func(message string) (bool, error) {
		asked = message
		return false, nil
	}

	res := runCLI(t, dir, s, "group", "update", "web")
	assert.ErrorIs(t, res.err, errCancelled)
	assert.Contains(t, asked, "group 'web'")
}

func TestGroupUpdate_UnknownGroupDoesNotPrompt(t *testing.T) {
	s := newSession()
	s.isTerminal = func() bool { return true }
	s.confirm = func(string) (bool, error) {
		t.Fatal("prompted for an unknown group")
		return false, nil
	}

	res := runCLI(t, t.TempDir(), s, "group", "update", "ghost")
	assert.ErrorIs(t, res.err, domain.ErrGroupNotDefined)
}

func TestConfirmAction(t *testing.T) {
	promptErr := errors.New("no tty")

	tests := []struct {
		name     string
		yes      bool
		terminal bool
		answer   bool
		err      error
		wantErr  error
		prompted bool
	}{
		{name: "yes flag skips prompt", yes: true, terminal: true},
		{name: "non-terminal skips prompt", terminal: false},
		{name: "accepted", terminal: true, answer: true, prompted: true},
		{name: "declined", terminal: true, wantErr: errCancelled, prompted: true},
		{name: "prompt failure", terminal: true, err: promptErr, wantErr: promptErr, prompted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompted := false
			s := &session{
				isTerminal: func() bool { return tt.terminal },
				confirm: func(string) (bool, error) {
					prompted = true
					return tt.answer, tt.err
				},
			}

			err := s.confirmAction(tt.yes, "continue with %s?", "x")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.prompted, prompted)
		})
	}
}

func TestVersion(t *testing.T) {
	res := runCLI(t, t.TempDir(), nil, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "corral 1.2.3")
	assert.Contains(t, res.stdout, "Commit: abc123")
	assert.Contains(t, res.stdout, "Docker engine unreachable")
}

func TestVersionFlag(t *testing.T) {
	res := runCLI(t, t.TempDir(), nil, "--version")
	require.NoError(t, res.err)
	assert.Equal(t, "corral 1.2.3\n", res.stdout)
}

func TestDebugFlag(t *testing.T) {
	res := runCLI(t, t.TempDir(), nil, "--debug", "group", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "kernel ready")
}

func TestInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corral.yaml"), []byte("stop_timeout: -5\n"), 0600))

	res := runCLI(t, dir, nil, "group", "list")
	assert.True(t, domain.IsConfigError(res.err))
}

func TestErrorLine(t *testing.T) {
	err := errors.Join(errors.New("rename failed"), errors.New("failed to restore group 'web'"))
	assert.Equal(t, "rename failed; failed to restore group 'web'", errorLine(err))
}
