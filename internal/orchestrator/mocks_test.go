package orchestrator

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

// Mock for PendingPushRepository
type mockPendingPushRepository struct{ mock.Mock }

func (m *mockPendingPushRepository) Save(ctx context.Context, record *domain.PendingPush) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockPendingPushRepository) Load(ctx context.Context, sessionID string) (*domain.PendingPush, error) {
	args := m.Called(ctx, sessionID)
	var record *domain.PendingPush
	if v := args.Get(0); v != nil {
		record = v.(*domain.PendingPush)
	}
	return record, args.Error(1)
}

func (m *mockPendingPushRepository) LoadLatest(ctx context.Context) (*domain.PendingPush, error) {
	args := m.Called(ctx)
	var record *domain.PendingPush
	if v := args.Get(0); v != nil {
		record = v.(*domain.PendingPush)
	}
	return record, args.Error(1)
}

func (m *mockPendingPushRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockPendingPushRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// Mock for GithubRepository
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) CreateRelease(ctx context.Context, tag, name, notes string) (string, error) {
	args := m.Called(ctx, tag, name, notes)
	return args.String(0), args.Error(1)
}

// Mock for DiscoveryService
type mockDiscoveryService struct{ mock.Mock }

func (m *mockDiscoveryService) ListApps(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var apps []string
	if v := args.Get(0); v != nil {
		apps = v.([]string)
	}
	return apps, args.Error(1)
}

// Mock for Prompter
type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) SelectApp(apps []string) (string, error) {
	args := m.Called(apps)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) SelectIncrement() (domain.IncrementClass, error) {
	args := m.Called()
	return args.Get(0).(domain.IncrementClass), args.Error(1)
}

func (m *mockPrompter) ConfirmVersion(proposed *domain.Version) (*domain.Version, error) {
	args := m.Called(proposed)
	var version *domain.Version
	if v := args.Get(0); v != nil {
		version = v.(*domain.Version)
	}
	return version, args.Error(1)
}

func (m *mockPrompter) SelectCommit(commits []domain.CommitRef, head string) (string, error) {
	args := m.Called(commits, head)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) ReadMessage(defaultMessage string) (string, error) {
	args := m.Called(defaultMessage)
	return args.String(0), args.Error(1)
}

func (m *mockPrompter) ConfirmPush() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}
