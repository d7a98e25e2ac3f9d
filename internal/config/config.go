package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Remote       string `mapstructure:"remote"`
	AppsDir      string `mapstructure:"apps_dir"`
	HistoryLimit int    `mapstructure:"history_limit"`
	AlwaysPush   bool   `mapstructure:"always_push"`
	StateDir     string `mapstructure:"state_dir"`
	GithubToken  string `mapstructure:"github_token"`
	GithubOwner  string `mapstructure:"github_owner"`
	GithubRepo   string `mapstructure:"github_repo"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Remote:       "origin",
		AppsDir:      "apps",
		HistoryLimit: 10,
		StateDir:     ".tagforge-state",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	if c.AppsDir == "" {
		return fmt.Errorf("apps_dir cannot be empty")
	}
	if strings.Contains(c.AppsDir, "..") {
		return fmt.Errorf("apps_dir contains invalid path traversal")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive")
	}
	if c.StateDir == "" {
		return fmt.Errorf("state_dir cannot be empty")
	}
	// GitHub settings are optional - only validate what is provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	return nil
}

// ValidateForGitHubOperations validates that the GitHub settings are complete
// for operations that require the API, such as release creation.
func (c *Config) ValidateForGitHubOperations() error {
	if c.GithubToken == "" {
		return fmt.Errorf("github_token is required for GitHub operations")
	}
	if c.GithubOwner == "" || c.GithubRepo == "" {
		return fmt.Errorf("github_owner and github_repo are required for GitHub operations")
	}
	return c.Validate()
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".tagforge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("TAGFORGE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	if err := viper.BindEnv("remote", "TAGFORGE_REMOTE"); err != nil {
		return nil, fmt.Errorf("failed to bind remote env: %w", err)
	}
	if err := viper.BindEnv("apps_dir", "TAGFORGE_APPS_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind apps_dir env: %w", err)
	}
	if err := viper.BindEnv("history_limit", "TAGFORGE_HISTORY_LIMIT"); err != nil {
		return nil, fmt.Errorf("failed to bind history_limit env: %w", err)
	}
	if err := viper.BindEnv("always_push", "TAGFORGE_ALWAYS_PUSH"); err != nil {
		return nil, fmt.Errorf("failed to bind always_push env: %w", err)
	}
	if err := viper.BindEnv("state_dir", "TAGFORGE_STATE_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind state_dir env: %w", err)
	}
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "TAGFORGE_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := viper.BindEnv("github_owner", "GITHUB_OWNER", "TAGFORGE_GITHUB_OWNER"); err != nil {
		return nil, fmt.Errorf("failed to bind github_owner env: %w", err)
	}
	if err := viper.BindEnv("github_repo", "GITHUB_REPO", "TAGFORGE_GITHUB_REPO"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repo env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("remote", defaults.Remote)
	viper.SetDefault("apps_dir", defaults.AppsDir)
	viper.SetDefault("history_limit", defaults.HistoryLimit)
	viper.SetDefault("state_dir", defaults.StateDir)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
