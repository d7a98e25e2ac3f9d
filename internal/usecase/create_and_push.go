package usecase

import (
	"context"

	"github.com/tagforge/tagforge/internal/domain"
)

// CreateAndPushResult carries the two independently observable outcomes of
// the combined operation. A tag that was created but not pushed is a valid
// terminal state the caller must be able to distinguish.
type CreateAndPushResult struct {
	Create domain.Outcome
	Push   domain.Outcome
	// PushAttempted is false when the create step failed and the push was
	// therefore skipped.
	PushAttempted bool
}

// Success reports whether both steps succeeded.
func (r CreateAndPushResult) Success() bool {
	return r.Create.Success && r.PushAttempted && r.Push.Success
}

// CreateAndPushUseCase runs create followed by push. The push never runs
// when the create step fails.

type CreateAndPushUseCase struct {
	Create *CreateTagUseCase
	Push   *PushTagUseCase
}

// Execute creates the tag and, only on success, pushes it.
func (uc *CreateAndPushUseCase) Execute(
	ctx context.Context,
	namespace string,
	version *domain.Version,
	commit string,
	message string,
) CreateAndPushResult {
	result := CreateAndPushResult{}
	result.Create = uc.Create.Execute(ctx, namespace, version, commit, message)
	if !result.Create.Success {
		return result
	}
	result.PushAttempted = true
	result.Push = uc.Push.Execute(ctx, namespace, version)
	return result
}
