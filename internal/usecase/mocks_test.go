package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tagforge/tagforge/internal/domain"
)

// Mock for GitRepository - implements all methods from the GitRepository interface
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) IsRepository() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockGitRepository) LocalTags(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	var tags []string
	if v := args.Get(0); v != nil {
		tags = v.([]string)
	}
	return tags, args.Error(1)
}

func (m *mockGitRepository) RemoteTags(ctx context.Context, remote, prefix string) ([]string, error) {
	args := m.Called(ctx, remote, prefix)
	var tags []string
	if v := args.Get(0); v != nil {
		tags = v.([]string)
	}
	return tags, args.Error(1)
}

func (m *mockGitRepository) TagExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) CreateTag(ctx context.Context, name, commit, message string) error {
	args := m.Called(ctx, name, commit, message)
	return args.Error(0)
}

func (m *mockGitRepository) PushTag(ctx context.Context, remote, name string) error {
	args := m.Called(ctx, remote, name)
	return args.Error(0)
}

func (m *mockGitRepository) HeadCommit(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) RecentCommits(ctx context.Context, count int) ([]domain.CommitRef, error) {
	args := m.Called(ctx, count)
	var commits []domain.CommitRef
	if v := args.Get(0); v != nil {
		commits = v.([]domain.CommitRef)
	}
	return commits, args.Error(1)
}
