package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSubject(t *testing.T) {
	t.Run("Should split a conventional subject with scope", func(t *testing.T) {
		parts := SplitSubject("feat(billing): add invoice export")
		assert.Equal(t, "billing", parts.Scope)
		assert.Equal(t, "add invoice export", parts.Message)
	})
	t.Run("Should tolerate a breaking-change marker", func(t *testing.T) {
		parts := SplitSubject("fix(api)!: drop legacy endpoint")
		assert.Equal(t, "api", parts.Scope)
		assert.Equal(t, "drop legacy endpoint", parts.Message)
	})
	t.Run("Should fall back to the raw subject without a scope", func(t *testing.T) {
		for _, subject := range []string{
			"update readme",
			"feat: no scope here",
			"feat(): empty scope",
			"",
		} {
			parts := SplitSubject(subject)
			assert.Empty(t, parts.Scope, "subject %q", subject)
			assert.Equal(t, subject, parts.Message, "subject %q", subject)
		}
	})
}

func TestCommitRef_Display(t *testing.T) {
	t.Run("Should include the scope when present", func(t *testing.T) {
		ref := CommitRef{ShortHash: "abc1234", Subject: "feat(core): wire resolver"}
		assert.Equal(t, "abc1234 [core] wire resolver", ref.Display())
	})
	t.Run("Should show the raw subject otherwise", func(t *testing.T) {
		ref := CommitRef{ShortHash: "abc1234", Subject: "initial commit"}
		assert.Equal(t, "abc1234 initial commit", ref.Display())
	})
}
