package domain

import "time"

// PendingPush records a tag that was created locally but whose push did not
// complete, so the push can be retried later without recreating the tag.
type PendingPush struct {
	SessionID string    `json:"session_id"`
	Namespace string    `json:"namespace"`
	Version   string    `json:"version"`
	TagName   string    `json:"tag_name"`
	Remote    string    `json:"remote"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPendingPush builds a pending-push record for a freshly created tag.
func NewPendingPush(sessionID, namespace string, version *Version, remote, reason string) *PendingPush {
	now := time.Now()
	return &PendingPush{
		SessionID: sessionID,
		Namespace: namespace,
		Version:   version.String(),
		TagName:   TagName(namespace, version),
		Remote:    remote,
		Reason:    reason,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
