package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagforge/tagforge/internal/domain"
	"github.com/tagforge/tagforge/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd(c *container) *cobra.Command {
	var resolveNext string
	cmd := &cobra.Command{
		Use:   "resolve <namespace>",
		Short: "Print the latest tagged version of an application",
		Long: `Print the latest tagged version of an application.

Local and remote tags are merged; an application with no valid tags
resolves to 0.0.0. With --next the printed version is the given bump of
the latest one, without creating anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := c.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			uc := &usecase.ResolveLatestUseCase{
				GitRepo: c.gitRepo,
				Remote:  c.cfg.Remote,
				Logger:  log,
			}
			latest, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if resolveNext == "" {
				fmt.Fprintln(cmd.OutOrStdout(), latest)
				return nil
			}
			class, err := domain.ParseIncrementClass(resolveNext)
			if err != nil {
				return err
			}
			next, err := latest.Bump(class)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().StringVar(&resolveNext, "next", "", "Print the next version instead (major, minor, patch)")
	return cmd
}
