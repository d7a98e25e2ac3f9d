package usecase

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
)

const (
	// DefaultPushRetries is the number of retries for transient push failures
	DefaultPushRetries = 3
	// DefaultPushRetryDelay is the initial delay for exponential backoff
	DefaultPushRetryDelay = 1 * time.Second
)

// PushTagUseCase pushes an already-created namespace tag to the remote.
// Decoupled from tag creation so a failed push can be retried without
// recreating the tag.

type PushTagUseCase struct {
	GitRepo    repository.GitRepository
	Remote     string
	Logger     *zap.Logger
	MaxRetries uint64
	RetryDelay time.Duration
}

// Execute pushes the tag name derived from namespace and version. Transient
// failures are retried with exponential backoff; pushing a tag the remote
// already has is a no-op success.
func (uc *PushTagUseCase) Execute(ctx context.Context, namespace string, version *domain.Version) domain.Outcome {
	if namespace == "" {
		return domain.OutcomeFailure("invalid input: namespace cannot be empty")
	}
	if version == nil {
		return domain.OutcomeFailure("invalid input: version cannot be nil")
	}
	return uc.push(ctx, domain.TagName(namespace, version))
}

// ExecuteByName pushes an exact tag name, used by the retry-push workflow
// where the name comes from a recorded pending push.
func (uc *PushTagUseCase) ExecuteByName(ctx context.Context, name string) domain.Outcome {
	if name == "" {
		return domain.OutcomeFailure("invalid input: tag name cannot be empty")
	}
	return uc.push(ctx, name)
}

func (uc *PushTagUseCase) push(ctx context.Context, name string) domain.Outcome {
	logger := resolveLogger(uc.Logger)
	if !uc.GitRepo.IsRepository() {
		logger.Error("cannot push tag outside a git repository", zap.String("tag", name))
		return domain.OutcomeFailure("not a git repository")
	}
	retries := uc.MaxRetries
	if retries == 0 {
		retries = DefaultPushRetries
	}
	delay := uc.RetryDelay
	if delay == 0 {
		delay = DefaultPushRetryDelay
	}
	err := retry.Do(ctx, retry.WithMaxRetries(retries, retry.NewExponential(delay)),
		func(retryCtx context.Context) error {
			if pushErr := uc.GitRepo.PushTag(retryCtx, uc.Remote, name); pushErr != nil {
				logger.Warn("push attempt failed",
					zap.String("tag", name),
					zap.String("remote", uc.Remote),
					zap.Error(pushErr))
				return retry.RetryableError(pushErr)
			}
			return nil
		})
	if err != nil {
		logger.Error("failed to push tag",
			zap.String("tag", name),
			zap.String("remote", uc.Remote),
			zap.Error(err))
		return domain.OutcomeFailure("failed to push tag %s to %s: %v", name, uc.Remote, err)
	}
	logger.Info("pushed tag", zap.String("tag", name), zap.String("remote", uc.Remote))
	return domain.OutcomeSuccess("pushed tag %s to %s", name, uc.Remote)
}
