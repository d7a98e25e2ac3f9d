package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DiscoveryService lists the candidate application namespaces of the
// monorepo.

type DiscoveryService interface {
	ListApps(ctx context.Context) ([]string, error)
}

// discoveryService reads application directories from the configured apps
// root.
type discoveryService struct {
	fs      afero.Fs
	appsDir string
}

// NewDiscoveryService creates a new DiscoveryService.
func NewDiscoveryService(fs afero.Fs, appsDir string) DiscoveryService {
	return &discoveryService{fs: fs, appsDir: appsDir}
}

// ListApps returns the names of directories directly under the apps root,
// sorted, with hidden entries skipped. Each name doubles as a tag namespace.
func (s *discoveryService) ListApps(_ context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.appsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read apps directory %s: %w", s.appsDir, err)
	}
	var apps []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		apps = append(apps, entry.Name())
	}
	sort.Strings(apps)
	return apps, nil
}
