package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagforge/tagforge/internal/orchestrator"
)

// NewRetryPushCmd creates the retry-push command
func NewRetryPushCmd(c *container) *cobra.Command {
	var retrySessionID string
	cmd := &cobra.Command{
		Use:   "retry-push",
		Short: "Retry the push of a created but unpushed tag",
		Long: `Retry the push of a created but unpushed tag.

When a tag is created and its push fails, the failure is recorded under
the state directory. This command pushes the recorded tag again without
recreating it and clears the record on success.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := c.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			orch := orchestrator.NewPushRetryOrchestrator(
				c.gitRepo,
				c.pendingRepo,
				log,
				cmd.OutOrStdout(),
			)
			return orch.Execute(cmd.Context(), retrySessionID)
		},
	}
	cmd.Flags().
		StringVar(&retrySessionID, "session-id", "", "Pending push to retry (uses latest if not specified)")
	return cmd
}
