package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
	"github.com/tagforge/tagforge/internal/usecase"
)

// PushRetryOrchestrator retries the push of a previously created tag from
// a recorded pending push. The tag is never recreated.
type PushRetryOrchestrator struct {
	gitRepo     repository.GitRepository
	pendingRepo repository.PendingPushRepository
	logger      *zap.Logger
	out         io.Writer
	// Zero values defer to the push use case defaults.
	pushRetries    uint64
	pushRetryDelay time.Duration
}

// NewPushRetryOrchestrator creates a new PushRetryOrchestrator.
func NewPushRetryOrchestrator(
	gitRepo repository.GitRepository,
	pendingRepo repository.PendingPushRepository,
	logger *zap.Logger,
	out io.Writer,
) *PushRetryOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PushRetryOrchestrator{
		gitRepo:     gitRepo,
		pendingRepo: pendingRepo,
		logger:      logger,
		out:         out,
	}
}

// Execute pushes the recorded tag. An empty sessionID selects the most
// recently updated pending push. The record is deleted only after the push
// succeeds, so a failed retry can be retried again.
func (o *PushRetryOrchestrator) Execute(ctx context.Context, sessionID string) error {
	record, err := o.loadRecord(ctx, sessionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.out, "Retrying push of %s to %s (session %s)\n",
		record.TagName, record.Remote, record.SessionID)

	uc := &usecase.PushTagUseCase{
		GitRepo:    o.gitRepo,
		Remote:     record.Remote,
		Logger:     o.logger,
		MaxRetries: o.pushRetries,
		RetryDelay: o.pushRetryDelay,
	}
	outcome := uc.ExecuteByName(ctx, record.TagName)
	fmt.Fprintln(o.out, outcome.Message)
	if !outcome.Success {
		record.Reason = outcome.Message
		if saveErr := o.pendingRepo.Save(ctx, record); saveErr != nil {
			o.logger.Warn("failed to update pending push record", zap.Error(saveErr))
		}
		return fmt.Errorf("push failed: %s", outcome.Message)
	}
	if err := o.pendingRepo.Delete(ctx, record.SessionID); err != nil {
		return fmt.Errorf("tag pushed but the pending record could not be removed: %w", err)
	}
	return nil
}

func (o *PushRetryOrchestrator) loadRecord(ctx context.Context, sessionID string) (*domain.PendingPush, error) {
	if sessionID == "" {
		return o.pendingRepo.LoadLatest(ctx)
	}
	return o.pendingRepo.Load(ctx, sessionID)
}
