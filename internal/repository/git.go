package repository

import (
	"context"

	"github.com/tagforge/tagforge/internal/domain"
)

// GitRepository defines the interface for git operations.

type GitRepository interface {
	// IsRepository reports whether the working directory is under git
	// management. It never fails: any probe error means false.
	IsRepository() bool
	LocalTags(ctx context.Context, prefix string) ([]string, error)
	RemoteTags(ctx context.Context, remote, prefix string) ([]string, error)
	TagExists(ctx context.Context, name string) (bool, error)
	CreateTag(ctx context.Context, name, commit, message string) error
	PushTag(ctx context.Context, remote, name string) error
	HeadCommit(ctx context.Context) (string, error)
	RecentCommits(ctx context.Context, count int) ([]domain.CommitRef, error)
}
