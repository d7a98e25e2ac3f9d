package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tagforge/tagforge/internal/domain"
)

func TestCreateTagUseCase_Execute(t *testing.T) {
	version := func(t *testing.T, s string) *domain.Version {
		t.Helper()
		v, err := domain.ParseVersion(s)
		require.NoError(t, err)
		return v
	}

	t.Run("Should create the namespaced tag", func(t *testing.T) {
		ctx := context.Background()
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(true)
		gitRepo.On("CreateTag", ctx, "@billing/1.4.0", "abc123", "release billing 1.4.0").Return(nil)
		uc := &CreateTagUseCase{GitRepo: gitRepo}
		outcome := uc.Execute(ctx, "billing", version(t, "1.4.0"), "abc123", "release billing 1.4.0")
		assert.True(t, outcome.Success)
		assert.Contains(t, outcome.Message, "@billing/1.4.0")
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should report underlying failures as a value", func(t *testing.T) {
		ctx := context.Background()
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(true)
		gitRepo.On("CreateTag", ctx, "@billing/1.4.0", "", "msg").
			Return(errors.New("tag already exists"))
		uc := &CreateTagUseCase{GitRepo: gitRepo}
		outcome := uc.Execute(ctx, "billing", version(t, "1.4.0"), "", "msg")
		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Message, "tag already exists")
	})
	t.Run("Should refuse to run outside a repository", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		gitRepo.On("IsRepository").Return(false)
		uc := &CreateTagUseCase{GitRepo: gitRepo}
		outcome := uc.Execute(context.Background(), "billing", version(t, "1.4.0"), "", "msg")
		assert.False(t, outcome.Success)
		gitRepo.AssertNotCalled(t, "CreateTag",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should reject invalid input without touching the repository", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &CreateTagUseCase{GitRepo: gitRepo}
		assert.False(t, uc.Execute(context.Background(), "", version(t, "1.0.0"), "", "msg").Success)
		assert.False(t, uc.Execute(context.Background(), "billing", nil, "", "msg").Success)
		assert.False(t, uc.Execute(context.Background(), "billing", version(t, "1.0.0"), "", "").Success)
		gitRepo.AssertNotCalled(t, "CreateTag",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
