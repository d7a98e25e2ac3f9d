package cmd

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/internal/logger"
	"github.com/tagforge/tagforge/internal/repository"
	"github.com/tagforge/tagforge/internal/service"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	fsRepo      repository.FileSystemRepository
	gitRepo     repository.GitRepository
	ghRepo      repository.GithubRepository
	pendingRepo repository.PendingPushRepository
	discovery   service.DiscoveryService
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	gitRepo := repository.NewGitRepository(".")
	pendingRepo := repository.NewJSONPendingPushRepository(fsRepo, cfg.StateDir)
	discovery := service.NewDiscoveryService(fsRepo, cfg.AppsDir)

	// GitHub release support is optional. Without a token the repository
	// degrades to a noop that explains what is missing.
	var ghRepo repository.GithubRepository
	if cfg.GithubToken != "" {
		ghRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
		if err != nil {
			return nil, err
		}
	} else {
		ghRepo = repository.NewGithubNoopRepository(cfg.GithubOwner, cfg.GithubRepo)
	}

	return &container{
		cfg:         cfg,
		fsRepo:      fsRepo,
		gitRepo:     gitRepo,
		ghRepo:      ghRepo,
		pendingRepo: pendingRepo,
		discovery:   discovery,
	}, nil
}

// newLogger builds the logger once flags are parsed, so --verbose applies.
func (c *container) newLogger() (*zap.Logger, error) {
	return logger.New(verbose)
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(NewTagCmd(c))
	rootCmd.AddCommand(NewResolveCmd(c))
	rootCmd.AddCommand(NewRetryPushCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
