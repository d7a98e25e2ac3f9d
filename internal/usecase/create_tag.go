package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
)

// CreateTagUseCase creates the annotated namespace tag at a chosen commit.

type CreateTagUseCase struct {
	GitRepo repository.GitRepository
	Logger  *zap.Logger
}

// Execute creates the tag and reports the result as a value. All underlying
// failures (missing commit, duplicate tag, transport errors) come back as a
// failed Outcome with the diagnostic preserved; nothing is thrown past this
// boundary.
func (uc *CreateTagUseCase) Execute(
	ctx context.Context,
	namespace string,
	version *domain.Version,
	commit string,
	message string,
) domain.Outcome {
	logger := resolveLogger(uc.Logger)
	if namespace == "" {
		return domain.OutcomeFailure("invalid input: namespace cannot be empty")
	}
	if version == nil {
		return domain.OutcomeFailure("invalid input: version cannot be nil")
	}
	if message == "" {
		return domain.OutcomeFailure("invalid input: tag message cannot be empty")
	}
	if !uc.GitRepo.IsRepository() {
		logger.Error("cannot create tag outside a git repository",
			zap.String("namespace", namespace))
		return domain.OutcomeFailure("not a git repository")
	}
	name := domain.TagName(namespace, version)
	if err := uc.GitRepo.CreateTag(ctx, name, commit, message); err != nil {
		logger.Error("failed to create tag",
			zap.String("tag", name),
			zap.String("commit", commit),
			zap.Error(err))
		return domain.OutcomeFailure("failed to create tag %s: %v", name, err)
	}
	logger.Info("created tag", zap.String("tag", name), zap.String("commit", commit))
	if commit == "" {
		return domain.OutcomeSuccess("created tag %s at HEAD", name)
	}
	return domain.OutcomeSuccess("created tag %s at %s", name, commit)
}
