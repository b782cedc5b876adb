package retoken

import (
	stderrors "errors"

	ferrors "git.home.luguber.info/inful/folio/internal/foundation/errors"
	"github.com/go-git/go-git/v5"
)

// RequireCleanWorktree fails unless dir sits inside a git repository whose
// worktree has no uncommitted changes, so a run can be reviewed and undone
// with git alone.
func RequireCleanWorktree(dir string) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return ferrors.GitError("not inside a git repository").
				WithContext("root", dir).
				Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryGit, "failed to open git repository").
			Fatal().
			WithContext("root", dir).
			Build()
	}

	w, err := repo.Worktree()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git worktree").Fatal().Build()
	}
	status, err := w.Status()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git status").Fatal().Build()
	}
	if !status.IsClean() {
		return ferrors.GitError("worktree has uncommitted changes").
			WithContext("root", dir).
			WithContext("dirty_files", len(status)).
			Build()
	}
	return nil
}
