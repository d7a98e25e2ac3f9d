package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagforge/tagforge/internal/orchestrator"
	"github.com/tagforge/tagforge/internal/service"
)

// NewTagCmd creates the tag command
func NewTagCmd(c *container) *cobra.Command {
	var (
		tagNamespace string
		tagIncrement string
		tagCommit    string
		tagMessage   string
		tagPush      bool
		tagNoPush    bool
		tagRelease   bool
		tagYes       bool
	)
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Create the next release tag for an application",
		Long: `Create the next release tag for an application.

The command resolves the highest existing @<namespace>/<version> tag across
local and remote tags, bumps it by the chosen increment, and creates an
annotated tag. Anything not given as a flag is asked interactively; enter
q at any prompt to cancel.

A tag whose push fails is kept locally and recorded, so the push can be
repeated later with "tagforge retry-push".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := c.newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			prompter := service.NewTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			orch := orchestrator.NewTagReleaseOrchestrator(
				c.gitRepo,
				c.pendingRepo,
				c.ghRepo,
				c.discovery,
				prompter,
				c.cfg,
				log,
				cmd.OutOrStdout(),
			)
			return orch.Execute(cmd.Context(), orchestrator.TagReleaseRequest{
				Namespace: tagNamespace,
				Increment: tagIncrement,
				Commit:    tagCommit,
				Message:   tagMessage,
				Push:      tagPush,
				NoPush:    tagNoPush,
				Release:   tagRelease,
				Yes:       tagYes,
			})
		},
	}

	cmd.Flags().StringVarP(&tagNamespace, "namespace", "n", "", "Application namespace to tag")
	cmd.Flags().StringVarP(&tagIncrement, "increment", "i", "", "Version component to bump (major, minor, patch)")
	cmd.Flags().StringVar(&tagCommit, "commit", "", "Commit to tag (defaults to HEAD)")
	cmd.Flags().StringVarP(&tagMessage, "message", "m", "", "Annotated tag message")
	cmd.Flags().BoolVar(&tagPush, "push", false, "Push the tag without asking")
	cmd.Flags().BoolVar(&tagNoPush, "no-push", false, "Never push the tag")
	cmd.Flags().BoolVar(&tagRelease, "github-release", false, "Publish a GitHub release after a successful push")
	cmd.Flags().BoolVarP(&tagYes, "yes", "y", false, "Accept all defaults without prompting (requires --namespace)")
	return cmd
}
