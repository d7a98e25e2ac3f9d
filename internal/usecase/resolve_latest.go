package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/repository"
)

// ResolveLatestUseCase resolves the highest existing tag version for a
// namespace across local and remote tag sets.

type ResolveLatestUseCase struct {
	GitRepo repository.GitRepository
	Remote  string
	Logger  *zap.Logger
}

// Execute returns the maximum version tagged for the namespace, or 0.0.0
// when nothing usable is found. Environment faults (not a repository,
// unreachable remote, enumeration failures) are logged and degrade to the
// zero version; they never propagate. The only error is invalid input.
func (uc *ResolveLatestUseCase) Execute(ctx context.Context, namespace string) (*domain.Version, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}
	logger := resolveLogger(uc.Logger)
	if !uc.GitRepo.IsRepository() {
		logger.Warn("not a git repository, defaulting to zero version",
			zap.String("namespace", namespace))
		return domain.ZeroVersion(), nil
	}
	records := uc.collectRecords(ctx, namespace, logger)
	latest := domain.ZeroVersion()
	for _, record := range records {
		if record.Version.Compare(latest) > 0 {
			latest = record.Version
		}
	}
	logger.Debug("resolved latest version",
		zap.String("namespace", namespace),
		zap.Int("candidates", len(records)),
		zap.String("version", latest.String()))
	return latest, nil
}

// collectRecords merges local and remote tag names for the namespace,
// deduplicated, keeping only names that parse as valid namespace tags.
func (uc *ResolveLatestUseCase) collectRecords(
	ctx context.Context,
	namespace string,
	logger *zap.Logger,
) []domain.TagRecord {
	prefix := domain.TagPrefix(namespace)
	seen := make(map[string]struct{})
	var records []domain.TagRecord
	appendTags := func(names []string, source domain.TagSource) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			version, err := domain.ParseTagVersion(name, namespace)
			if err != nil {
				// Malformed triples and sibling namespaces sharing a
				// textual prefix are silently excluded from resolution.
				logger.Debug("skipping invalid tag", zap.String("tag", name))
				continue
			}
			records = append(records, domain.TagRecord{
				Namespace: namespace,
				Version:   version,
				Source:    source,
			})
		}
	}
	local, err := uc.GitRepo.LocalTags(ctx, prefix)
	if err != nil {
		logger.Warn("failed to enumerate local tags",
			zap.String("namespace", namespace), zap.Error(err))
	}
	appendTags(local, domain.TagSourceLocal)
	remote, err := uc.GitRepo.RemoteTags(ctx, uc.Remote, prefix)
	if err != nil {
		logger.Warn("failed to enumerate remote tags, continuing with local tags",
			zap.String("namespace", namespace),
			zap.String("remote", uc.Remote), zap.Error(err))
	}
	appendTags(remote, domain.TagSourceRemote)
	return records
}
