// Package git wraps the externally installed git executable. Commands are
// built as argument lists and never pass through a shell, so repository
// URLs and commit messages need no escaping. The executable's behavior is
// out of scope: the runner only shapes arguments and relays output.
package git

import (
	"context"
	"os/exec"

	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/logger"
)

// Runner issues git commands against a fixed working directory.
type Runner struct {
	binary   string
	workDir  string
	executor CommandExecutor
	logger   *logger.Logger
}

// NewRunner constructs a [Runner] from the git config section. executor may
// be nil, in which case the os/exec implementation is used.
func NewRunner(cfg config.ClientGit, executor CommandExecutor, log *logger.Logger) *Runner {
	if executor == nil {
		executor = NewExecExecutor()
	}
	return &Runner{
		binary:   cfg.Binary,
		workDir:  cfg.WorkDir,
		executor: executor,
		logger:   log,
	}
}

// Clone runs `git clone url dir`. dir may be empty to let git derive the
// directory name from the URL.
func (r *Runner) Clone(ctx context.Context, url, dir string) (string, error) {
	args := []string{"clone", url}
	if dir != "" {
		args = append(args, dir)
	}
	return r.run(ctx, args...)
}

// Status returns the human-readable `git status` output.
func (r *Runner) Status(ctx context.Context) (string, error) {
	return r.run(ctx, "status")
}

// AddAll stages every change in the working tree.
func (r *Runner) AddAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", ".")
	return err
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(ctx context.Context, message string) (string, error) {
	return r.run(ctx, "commit", "-m", message)
}

// Push publishes the current branch to its upstream.
func (r *Runner) Push(ctx context.Context) (string, error) {
	return r.run(ctx, "push")
}

// Pull fetches and integrates from the upstream.
func (r *Runner) Pull(ctx context.Context) (string, error) {
	return r.run(ctx, "pull")
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	return r.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// IsRepository reports whether path is inside a git work tree.
func (r *Runner) IsRepository(ctx context.Context, path string) bool {
	cmd := exec.CommandContext(ctx, r.binary, "-C", path, "rev-parse", "--is-inside-work-tree")
	out, err := r.executor.ExecuteWithOutput(cmd)
	return err == nil && out == "true"
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	baseArgs := make([]string, 0, len(args)+2)
	if r.workDir != "" {
		baseArgs = append(baseArgs, "-C", r.workDir)
	}
	baseArgs = append(baseArgs, args...)

	r.logger.Debug().Strs("args", baseArgs).Msg("running git")

	cmd := exec.CommandContext(ctx, r.binary, baseArgs...)
	out, err := r.executor.ExecuteWithOutput(cmd)
	if err != nil {
		r.logger.Warn().Err(err).Msg("git command failed")
		return "", err
	}

	return out, nil
}
