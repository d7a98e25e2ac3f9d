package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
)

// RecentCommitsUseCase reads recent history for the commit picker.

type RecentCommitsUseCase struct {
	GitRepo repository.GitRepository
	Limit   int
	Logger  *zap.Logger
}

// Execute returns up to Limit commits, newest first. Failure to read
// history (not a repository, empty history) yields an empty slice rather
// than propagating.
func (uc *RecentCommitsUseCase) Execute(ctx context.Context) []domain.CommitRef {
	logger := resolveLogger(uc.Logger)
	if !uc.GitRepo.IsRepository() {
		logger.Warn("not a git repository, no history available")
		return nil
	}
	commits, err := uc.GitRepo.RecentCommits(ctx, uc.Limit)
	if err != nil {
		logger.Warn("failed to read commit history", zap.Error(err))
		return nil
	}
	return commits
}

// LatestCommitUseCase reports the commit HEAD points at.

type LatestCommitUseCase struct {
	GitRepo repository.GitRepository
}

// Execute returns the HEAD commit SHA.
func (uc *LatestCommitUseCase) Execute(ctx context.Context) (string, error) {
	if !uc.GitRepo.IsRepository() {
		return "", repository.ErrNotARepository
	}
	commit, err := uc.GitRepo.HeadCommit(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	return commit, nil
}
