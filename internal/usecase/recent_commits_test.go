package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
)

func TestRecentCommitsUseCase_Execute(t *testing.T) {
	t.Run("Should return recent commits", func(t *testing.T) {
		ctx := context.Background()
		gitRepo := new(mockGitRepository)
		expected := []domain.CommitRef{
			{Hash: "bbb", ShortHash: "bbb", Subject: "feat(core): second"},
			{Hash: "aaa", ShortHash: "aaa", Subject: "first"},
		}
		gitRepo.On("IsRepository").Return(true)
		gitRepo.On("RecentCommits", ctx, 10).Return(expected, nil)
		uc := &RecentCommitsUseCase{GitRepo: gitRepo, Limit: 10}
		assert.Equal(t, expected, uc.Execute(ctx))
	})
	t.Run("Should return empty outside a repository", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(false)
		uc := &RecentCommitsUseCase{GitRepo: gitRepo, Limit: 10}
		assert.Empty(t, uc.Execute(context.Background()))
	})
	t.Run("Should return empty when history cannot be read", func(t *testing.T) {
		ctx := context.Background()
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(true)
		gitRepo.On("RecentCommits", ctx, 10).Return(nil, errors.New("no HEAD"))
		uc := &RecentCommitsUseCase{GitRepo: gitRepo, Limit: 10}
		assert.Empty(t, uc.Execute(ctx))
	})
}

func TestLatestCommitUseCase_Execute(t *testing.T) {
	t.Run("Should return the HEAD commit", func(t *testing.T) {
		ctx := context.Background()
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(true)
		gitRepo.On("HeadCommit", ctx).Return("abc123", nil)
		uc := &LatestCommitUseCase{GitRepo: gitRepo}
		commit, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc123", commit)
	})
	t.Run("Should fail outside a repository", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(false)
		uc := &LatestCommitUseCase{GitRepo: gitRepo}
		_, err := uc.Execute(context.Background())
		assert.ErrorIs(t, err, repository.ErrNotARepository)
	})
}
