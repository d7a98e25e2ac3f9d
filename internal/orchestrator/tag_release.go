package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
	"github.com/tagforge/tagforge/internal/service"
	"github.com/tagforge/tagforge/internal/usecase"
)

// DefaultWorkflowTimeout bounds a full tag workflow, including remote
// operations and operator prompts.
const DefaultWorkflowTimeout = 10 * time.Minute

// TagReleaseRequest carries the command-line inputs of the tag workflow.
// Empty fields are resolved interactively through the prompter.
type TagReleaseRequest struct {
	Namespace string
	Increment string
	Commit    string
	Message   string
	// Push forces a push without asking; NoPush suppresses it. NoPush wins
	// when both are set.
	Push   bool
	NoPush bool
	// Release publishes a GitHub release after a successful push.
	Release bool
	// Yes accepts all defaults without prompting. Requires Namespace.
	Yes bool
}

// TagReleaseOrchestrator drives the end-to-end tag workflow: pick an
// application, resolve its latest version, bump it, create the annotated
// tag, and optionally push it and publish a release.
type TagReleaseOrchestrator struct {
	gitRepo     repository.GitRepository
	pendingRepo repository.PendingPushRepository
	githubRepo  repository.GithubRepository
	discovery   service.DiscoveryService
	prompter    service.Prompter
	config      *config.Config
	logger      *zap.Logger
	out         io.Writer
	// Zero values defer to the push use case defaults.
	pushRetries    uint64
	pushRetryDelay time.Duration
}

// NewTagReleaseOrchestrator creates a new TagReleaseOrchestrator.
func NewTagReleaseOrchestrator(
	gitRepo repository.GitRepository,
	pendingRepo repository.PendingPushRepository,
	githubRepo repository.GithubRepository,
	discovery service.DiscoveryService,
	prompter service.Prompter,
	cfg *config.Config,
	logger *zap.Logger,
	out io.Writer,
) *TagReleaseOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagReleaseOrchestrator{
		gitRepo:     gitRepo,
		pendingRepo: pendingRepo,
		githubRepo:  githubRepo,
		discovery:   discovery,
		prompter:    prompter,
		config:      cfg,
		logger:      logger,
		out:         out,
	}
}

// Execute runs the workflow. Operator cancellation at any prompt aborts
// cleanly: steps already committed (a created tag) stay, nothing further
// runs.
func (o *TagReleaseOrchestrator) Execute(ctx context.Context, request TagReleaseRequest) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	namespace, err := o.resolveNamespace(ctx, request)
	if err != nil {
		return o.abortOn(err)
	}
	latest, err := o.resolveLatest(ctx, namespace)
	if err != nil {
		return err
	}
	o.printStatus("Latest version for %s: %s", namespace, latest)

	next, err := o.resolveNext(request, latest)
	if err != nil {
		return o.abortOn(err)
	}
	tagName := domain.TagName(namespace, next)
	o.printStatus("Next version: %s (%s)", next, tagName)

	commit, err := o.resolveCommit(ctx, request)
	if err != nil {
		return o.abortOn(err)
	}
	message, err := o.resolveMessage(request, tagName)
	if err != nil {
		return o.abortOn(err)
	}

	push, askPush := o.pushDecision(request)
	if !askPush && push {
		// The push decision is already made, so create and push run as one
		// combined operation.
		result := o.createAndPushTag(ctx, namespace, next, commit, message)
		o.printStatus("%s", result.Create.Message)
		if !result.Create.Success {
			return fmt.Errorf("tag creation failed: %s", result.Create.Message)
		}
		o.printStatus("%s", result.Push.Message)
		if !result.Push.Success {
			return o.recordPendingPush(ctx, namespace, next, result.Push)
		}
		if request.Release {
			return o.publishRelease(ctx, tagName, message)
		}
		return nil
	}

	createOutcome := o.createTag(ctx, namespace, next, commit, message)
	o.printStatus("%s", createOutcome.Message)
	if !createOutcome.Success {
		return fmt.Errorf("tag creation failed: %s", createOutcome.Message)
	}

	if askPush {
		push, err = o.prompter.ConfirmPush()
		if err != nil {
			return o.abortOn(err)
		}
	}
	if !push {
		o.printStatus("Push skipped, tag %s exists locally only", tagName)
		return nil
	}

	pushOutcome := o.pushTag(ctx, namespace, next)
	o.printStatus("%s", pushOutcome.Message)
	if !pushOutcome.Success {
		return o.recordPendingPush(ctx, namespace, next, pushOutcome)
	}

	if request.Release {
		return o.publishRelease(ctx, tagName, message)
	}
	return nil
}

// resolveNamespace returns the requested namespace or asks the operator to
// pick one of the discovered applications.
func (o *TagReleaseOrchestrator) resolveNamespace(ctx context.Context, request TagReleaseRequest) (string, error) {
	if request.Namespace != "" {
		return request.Namespace, nil
	}
	if request.Yes {
		return "", errors.New("a namespace is required in non-interactive mode")
	}
	apps, err := o.discovery.ListApps(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to discover applications: %w", err)
	}
	if len(apps) == 0 {
		return "", fmt.Errorf("no applications found under %s", o.config.AppsDir)
	}
	return o.prompter.SelectApp(apps)
}

func (o *TagReleaseOrchestrator) resolveLatest(ctx context.Context, namespace string) (*domain.Version, error) {
	uc := &usecase.ResolveLatestUseCase{
		GitRepo: o.gitRepo,
		Remote:  o.config.Remote,
		Logger:  o.logger,
	}
	return uc.Execute(ctx, namespace)
}

// resolveNext bumps the latest version by the requested or selected
// increment, then lets the operator confirm or override the result.
func (o *TagReleaseOrchestrator) resolveNext(request TagReleaseRequest, latest *domain.Version) (*domain.Version, error) {
	class := domain.IncrementPatch
	switch {
	case request.Increment != "":
		parsed, err := domain.ParseIncrementClass(request.Increment)
		if err != nil {
			return nil, err
		}
		class = parsed
	case !request.Yes:
		selected, err := o.prompter.SelectIncrement()
		if err != nil {
			return nil, err
		}
		class = selected
	}
	next, err := latest.Bump(class)
	if err != nil {
		return nil, err
	}
	if request.Yes {
		return next, nil
	}
	return o.prompter.ConfirmVersion(next)
}

// resolveCommit returns the commit to tag. Empty means HEAD.
func (o *TagReleaseOrchestrator) resolveCommit(ctx context.Context, request TagReleaseRequest) (string, error) {
	if request.Commit != "" {
		return request.Commit, nil
	}
	if request.Yes {
		return "", nil
	}
	commits := (&usecase.RecentCommitsUseCase{
		GitRepo: o.gitRepo,
		Limit:   o.config.HistoryLimit,
		Logger:  o.logger,
	}).Execute(ctx)
	head, err := (&usecase.LatestCommitUseCase{GitRepo: o.gitRepo}).Execute(ctx)
	if err != nil {
		head = ""
	}
	return o.prompter.SelectCommit(commits, head)
}

func (o *TagReleaseOrchestrator) resolveMessage(request TagReleaseRequest, tagName string) (string, error) {
	if request.Message != "" {
		return request.Message, nil
	}
	defaultMessage := fmt.Sprintf("Release %s", tagName)
	if request.Yes {
		return defaultMessage, nil
	}
	return o.prompter.ReadMessage(defaultMessage)
}

func (o *TagReleaseOrchestrator) createTag(
	ctx context.Context,
	namespace string,
	version *domain.Version,
	commit string,
	message string,
) domain.Outcome {
	uc := &usecase.CreateTagUseCase{GitRepo: o.gitRepo, Logger: o.logger}
	return uc.Execute(ctx, namespace, version, commit, message)
}

// pushDecision applies the push policy: explicit flags first, then the
// always_push configuration. When neither decides, ask reports that the
// operator must be consulted after the tag exists.
func (o *TagReleaseOrchestrator) pushDecision(request TagReleaseRequest) (push, ask bool) {
	switch {
	case request.NoPush:
		return false, false
	case request.Push || o.config.AlwaysPush:
		return true, false
	case request.Yes:
		return false, false
	}
	return false, true
}

func (o *TagReleaseOrchestrator) createAndPushTag(
	ctx context.Context,
	namespace string,
	version *domain.Version,
	commit string,
	message string,
) usecase.CreateAndPushResult {
	uc := &usecase.CreateAndPushUseCase{
		Create: &usecase.CreateTagUseCase{GitRepo: o.gitRepo, Logger: o.logger},
		Push: &usecase.PushTagUseCase{
			GitRepo:    o.gitRepo,
			Remote:     o.config.Remote,
			Logger:     o.logger,
			MaxRetries: o.pushRetries,
			RetryDelay: o.pushRetryDelay,
		},
	}
	return uc.Execute(ctx, namespace, version, commit, message)
}

func (o *TagReleaseOrchestrator) pushTag(ctx context.Context, namespace string, version *domain.Version) domain.Outcome {
	uc := &usecase.PushTagUseCase{
		GitRepo:    o.gitRepo,
		Remote:     o.config.Remote,
		Logger:     o.logger,
		MaxRetries: o.pushRetries,
		RetryDelay: o.pushRetryDelay,
	}
	return uc.Execute(ctx, namespace, version)
}

// recordPendingPush persists the created-but-unpushed tag so the push can
// be retried later, then reports the failure.
func (o *TagReleaseOrchestrator) recordPendingPush(
	ctx context.Context,
	namespace string,
	version *domain.Version,
	outcome domain.Outcome,
) error {
	sessionID := uuid.New().String()
	record := domain.NewPendingPush(sessionID, namespace, version, o.config.Remote, outcome.Message)
	if saveErr := o.pendingRepo.Save(ctx, record); saveErr != nil {
		o.printStatus("Warning: could not record the pending push: %v", saveErr)
		return fmt.Errorf("tag %s was created but not pushed: %s", record.TagName, outcome.Message)
	}
	o.printStatus("Tag %s was created but not pushed, retry with: tagforge retry-push --session-id %s",
		record.TagName, sessionID)
	return fmt.Errorf("push failed: %s", outcome.Message)
}

func (o *TagReleaseOrchestrator) publishRelease(ctx context.Context, tagName, message string) error {
	url, err := o.githubRepo.CreateRelease(ctx, tagName, tagName, message)
	if err != nil {
		return fmt.Errorf("tag %s was pushed but the release failed: %w", tagName, err)
	}
	o.printStatus("Published release: %s", url)
	return nil
}

// abortOn turns operator cancellation into a clean stop and passes every
// other error through.
func (o *TagReleaseOrchestrator) abortOn(err error) error {
	if errors.Is(err, service.ErrCanceled) {
		o.printStatus("Canceled")
		return nil
	}
	return err
}

func (o *TagReleaseOrchestrator) printStatus(format string, args ...any) {
	fmt.Fprintf(o.out, format+"\n", args...)
}
