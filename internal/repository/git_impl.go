package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/tagforge/tagforge/internal/domain"
)

// ErrNotARepository is returned by operations that require an open
// repository when the probe came back negative.
var ErrNotARepository = errors.New("not a git repository")

const shortHashLength = 7

// gitRepository is the go-git backed implementation of GitRepository.
// Tag names, commit refs and messages travel as structured arguments all the
// way down, so operator-supplied text can never alter command semantics.
type gitRepository struct {
	root string
	repo *git.Repository
}

// NewGitRepository opens the repository at root. Construction never fails:
// when root is not a repository the returned value answers IsRepository with
// false and every other operation reports ErrNotARepository.
func NewGitRepository(root string) GitRepository {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return &gitRepository{root: root}
	}
	return &gitRepository{root: root, repo: repo}
}

// IsRepository checks for the .git marker first and falls back to opening
// the repository. Any failure means false, never an error.
func (r *gitRepository) IsRepository() bool {
	if r.repo != nil {
		return true
	}
	if info, err := os.Stat(filepath.Join(r.root, git.GitDirName)); err == nil {
		// A regular file marks a linked worktree, a directory the main one.
		if info.IsDir() || info.Mode().IsRegular() {
			return true
		}
	}
	_, err := git.PlainOpen(r.root)
	return err == nil
}

// LocalTags returns the names of local tags starting with prefix.
func (r *gitRepository) LocalTags(_ context.Context, prefix string) ([]string, error) {
	if r.repo == nil {
		return nil, ErrNotARepository
	}
	refs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if name := ref.Name().Short(); strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return names, nil
}

// RemoteTags lists tag names starting with prefix as advertised by the
// given remote.
func (r *gitRepository) RemoteTags(_ context.Context, remote, prefix string) ([]string, error) {
	if r.repo == nil {
		return nil, ErrNotARepository
	}
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return nil, fmt.Errorf("failed to get remote %s: %w", remote, err)
	}
	refs, err := rem.List(&git.ListOptions{Auth: r.getAuth()})
	if err != nil {
		return nil, fmt.Errorf("failed to list refs on remote %s: %w", remote, err)
	}
	var names []string
	for _, ref := range refs {
		if !ref.Name().IsTag() {
			continue
		}
		if name := ref.Name().Short(); strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

// TagExists checks if a local tag with the given name exists.
func (r *gitRepository) TagExists(_ context.Context, name string) (bool, error) {
	if r.repo == nil {
		return false, ErrNotARepository
	}
	_, err := r.repo.Tag(name)
	if err == git.ErrTagNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check tag %s: %w", name, err)
	}
	return true, nil
}

// CreateTag creates an annotated tag at the given commit carrying message
// verbatim. An empty commit tags HEAD.
func (r *gitRepository) CreateTag(_ context.Context, name, commit, message string) error {
	if r.repo == nil {
		return ErrNotARepository
	}
	var hash plumbing.Hash
	if commit == "" {
		head, err := r.repo.Head()
		if err != nil {
			return fmt.Errorf("failed to get HEAD: %w", err)
		}
		hash = head.Hash()
	} else {
		resolved, err := r.repo.ResolveRevision(plumbing.Revision(commit))
		if err != nil {
			return fmt.Errorf("failed to resolve commit %s: %w", commit, err)
		}
		hash = *resolved
	}
	_, err := r.repo.CreateTag(name, hash, &git.CreateTagOptions{
		Message: message,
		Tagger:  r.tagger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// tagger builds the tag signature from the repository's user configuration,
// falling back to a tool identity when none is set.
func (r *gitRepository) tagger() *object.Signature {
	sig := &object.Signature{
		Name:  "tagforge",
		Email: "tagforge@localhost",
		When:  time.Now(),
	}
	cfg, err := r.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// PushTag pushes a single tag refspec to the given remote. Pushing a tag
// that is already present on the remote is a no-op, not an error.
func (r *gitRepository) PushTag(ctx context.Context, remote, name string) error {
	if r.repo == nil {
		return ErrNotARepository
	}
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", name, name))},
		Auth:       r.getAuth(),
	})
	if err == git.NoErrAlreadyUpToDate {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push tag %s to %s: %w", name, remote, err)
	}
	return nil
}

// HeadCommit returns the SHA of the current HEAD commit.
func (r *gitRepository) HeadCommit(_ context.Context) (string, error) {
	if r.repo == nil {
		return "", ErrNotARepository
	}
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// RecentCommits returns up to count commits reachable from HEAD, newest
// first, with their subject lines.
func (r *gitRepository) RecentCommits(_ context.Context, count int) ([]domain.CommitRef, error) {
	if r.repo == nil {
		return nil, ErrNotARepository
	}
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	log, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	var commits []domain.CommitRef
	err = log.ForEach(func(c *object.Commit) error {
		if len(commits) >= count {
			return storer.ErrStop
		}
		full := c.Hash.String()
		commits = append(commits, domain.CommitRef{
			Hash:      full,
			ShortHash: full[:shortHashLength],
			Subject:   commitSubject(c.Message),
		})
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return commits, nil
}

// commitSubject extracts the first line of a commit message.
func commitSubject(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

// getAuth returns token authentication for remotes that need it, such as
// pushes from CI.
func (r *gitRepository) getAuth() *http.BasicAuth {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("TAGFORGE_GIT_TOKEN")
	}
	if token == "" {
		return nil
	}
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: token,
	}
}
