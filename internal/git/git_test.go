package git

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor captures the argument lists of every executed command and
// plays back canned results.
type fakeExecutor struct {
	calls  [][]string
	output string
	err    error
}

func (f *fakeExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	f.calls = append(f.calls, cmd.Args)
	return f.output, f.err
}

func newTestRunner(t *testing.T, workDir string) (*Runner, *fakeExecutor) {
	t.Helper()
	fake := &fakeExecutor{}
	r := NewRunner(config.ClientGit{Binary: "git", WorkDir: workDir}, fake, logger.Nop())
	return r, fake
}

// ── argument construction ─────────────────────────────────────────────────────

func TestClone_Args(t *testing.T) {
	r, fake := newTestRunner(t, "")

	_, err := r.Clone(context.Background(), "https://github.com/octocat/hello.git", "")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"git", "clone", "https://github.com/octocat/hello.git"}, fake.calls[0])
}

func TestClone_ArgsWithTargetDir(t *testing.T) {
	r, fake := newTestRunner(t, "")

	_, err := r.Clone(context.Background(), "https://github.com/octocat/hello.git", "hello-copy")
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "clone", "https://github.com/octocat/hello.git", "hello-copy"}, fake.calls[0])
}

func TestCommit_MessageIsSingleArgument(t *testing.T) {
	r, fake := newTestRunner(t, "")

	// Message with spaces and quote-ish content must survive untouched:
	// argument-list invocation means no shell interpolation.
	msg := `Update from ghpocket; rm -rf "$HOME"`
	_, err := r.Commit(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "commit", "-m", msg}, fake.calls[0])
}

func TestRun_WorkDirPrepended(t *testing.T) {
	r, fake := newTestRunner(t, "/sdcard/repos/hello")

	_, err := r.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "-C", "/sdcard/repos/hello", "status"}, fake.calls[0])
}

func TestAddAll_Args(t *testing.T) {
	r, fake := newTestRunner(t, "")

	require.NoError(t, r.AddAll(context.Background()))
	assert.Equal(t, []string{"git", "add", "."}, fake.calls[0])
}

func TestPushPull_Args(t *testing.T) {
	r, fake := newTestRunner(t, "")

	_, err := r.Push(context.Background())
	require.NoError(t, err)
	_, err = r.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "push"}, fake.calls[0])
	assert.Equal(t, []string{"git", "pull"}, fake.calls[1])
}

func TestCurrentBranch_TrimmedOutput(t *testing.T) {
	r, fake := newTestRunner(t, "")
	fake.output = "main"

	branch, err := r.CurrentBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
	assert.Equal(t, []string{"git", "rev-parse", "--abbrev-ref", "HEAD"}, fake.calls[0])
}

// ── failure relay ─────────────────────────────────────────────────────────────

func TestRun_ExecutorFailureIsReturned(t *testing.T) {
	r, fake := newTestRunner(t, "")
	fake.err = errors.New("fatal: not a git repository")

	_, err := r.Status(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

// ── IsRepository ──────────────────────────────────────────────────────────────

func TestIsRepository(t *testing.T) {
	r, fake := newTestRunner(t, "")
	fake.output = "true"
	assert.True(t, r.IsRepository(context.Background(), "/tmp/repo"))
	assert.Equal(t, []string{"git", "-C", "/tmp/repo", "rev-parse", "--is-inside-work-tree"}, fake.calls[0])

	fake.output = ""
	fake.err = errors.New("fatal: not a git repository")
	assert.False(t, r.IsRepository(context.Background(), "/tmp/not-repo"))
}

// ── ExecExecutor ──────────────────────────────────────────────────────────────

func TestExecExecutor_CapturesStderrInError(t *testing.T) {
	e := NewExecExecutor()

	// `false` exits non-zero everywhere without side effects.
	cmd := exec.Command("false")
	_, err := e.ExecuteWithOutput(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "false")
}

func TestExecExecutor_ReturnsTrimmedStdout(t *testing.T) {
	e := NewExecExecutor()

	cmd := exec.Command("echo", "hello")
	out, err := e.ExecuteWithOutput(cmd)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}
