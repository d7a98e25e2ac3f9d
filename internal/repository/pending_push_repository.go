package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"github.com/tagforge/tagforge/internal/domain"
)

const (
	// PendingSchemaVersion defines the current schema version for pending-push files
	PendingSchemaVersion = "1.0.0"
	// PendingFilePermissions defines the permissions for pending-push files
	PendingFilePermissions = 0600
	// PendingDirPermissions defines the permissions for the state directory
	PendingDirPermissions = 0700
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// PendingPushRepository persists created-but-unpushed tag records so a
// failed push can be retried without recreating the tag.
type PendingPushRepository interface {
	Save(ctx context.Context, record *domain.PendingPush) error
	Load(ctx context.Context, sessionID string) (*domain.PendingPush, error)
	LoadLatest(ctx context.Context) (*domain.PendingPush, error)
	Delete(ctx context.Context, sessionID string) error
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// pendingMetadata contains metadata about the pending-push file
type pendingMetadata struct {
	SchemaVersion string    `json:"schema_version"`
	Checksum      string    `json:"checksum"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// pendingWrapper wraps the record with metadata
type pendingWrapper struct {
	Metadata pendingMetadata     `json:"metadata"`
	Record   *domain.PendingPush `json:"record"`
}

// JSONPendingPushRepository implements PendingPushRepository using JSON
// files under a state directory, guarded by file locks.
type JSONPendingPushRepository struct {
	fs       afero.Fs
	stateDir string
}

// NewJSONPendingPushRepository creates a new JSON-based pending-push repository.
func NewJSONPendingPushRepository(fs afero.Fs, stateDir string) PendingPushRepository {
	if stateDir == "" {
		stateDir = ".tagforge-state"
	}
	return &JSONPendingPushRepository{
		fs:       fs,
		stateDir: stateDir,
	}
}

// Save persists the pending-push record with proper locking and an atomic
// temp-file rename.
func (r *JSONPendingPushRepository) Save(ctx context.Context, record *domain.PendingPush) error {
	if err := r.fs.MkdirAll(r.stateDir, PendingDirPermissions); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}
	filename := r.recordFilename(record.SessionID)
	lock := flock.New(r.lockFilename(record.SessionID))
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := r.acquireLock(lockCtx, lock.TryLock)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock within timeout")
	}
	defer r.unlock(lock)
	record.UpdatedAt = time.Now()
	wrapper := pendingWrapper{
		Metadata: pendingMetadata{
			SchemaVersion: PendingSchemaVersion,
			CreatedAt:     record.CreatedAt,
			UpdatedAt:     record.UpdatedAt,
		},
		Record: record,
	}
	recordData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record for checksum: %w", err)
	}
	wrapper.Metadata.Checksum = checksum(recordData)
	data, err := json.MarshalIndent(wrapper, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record wrapper: %w", err)
	}
	tempFile := filename + ".tmp"
	if err := afero.WriteFile(r.fs, tempFile, data, PendingFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp record file: %w", err)
	}
	if err := r.fs.Rename(tempFile, filename); err != nil {
		if removeErr := r.fs.Remove(tempFile); removeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove temp file: %v\n", removeErr)
		}
		return fmt.Errorf("failed to rename record file: %w", err)
	}
	return nil
}

// Load retrieves a pending-push record by session ID with validation.
func (r *JSONPendingPushRepository) Load(ctx context.Context, sessionID string) (*domain.PendingPush, error) {
	lock := flock.New(r.lockFilename(sessionID))
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := r.acquireLock(lockCtx, lock.TryRLock)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire shared lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire shared lock within timeout")
	}
	defer r.unlock(lock)
	data, err := afero.ReadFile(r.fs, r.recordFilename(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no pending push found for session %s", sessionID)
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	var wrapper pendingWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record wrapper: %w", err)
	}
	if wrapper.Metadata.SchemaVersion != PendingSchemaVersion {
		return nil, fmt.Errorf("incompatible schema version: expected %s, got %s",
			PendingSchemaVersion, wrapper.Metadata.SchemaVersion)
	}
	recordData, err := json.Marshal(wrapper.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record for checksum validation: %w", err)
	}
	if wrapper.Metadata.Checksum != checksum(recordData) {
		return nil, fmt.Errorf("record checksum mismatch: data may be corrupted")
	}
	return wrapper.Record, nil
}

// LoadLatest retrieves the most recently updated pending-push record.
func (r *JSONPendingPushRepository) LoadLatest(ctx context.Context) (*domain.PendingPush, error) {
	entries, err := afero.ReadDir(r.fs, r.stateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no pending pushes found")
		}
		return nil, fmt.Errorf("failed to read state directory: %w", err)
	}
	var latestID string
	var latestTime time.Time
	for _, entry := range entries {
		sessionID := sessionIDFromFilename(entry.Name())
		if sessionID == "" {
			continue
		}
		if latestID == "" || entry.ModTime().After(latestTime) {
			latestID = sessionID
			latestTime = entry.ModTime()
		}
	}
	if latestID == "" {
		return nil, fmt.Errorf("no pending pushes found")
	}
	return r.Load(ctx, latestID)
}

// Delete removes a pending-push record once its push has succeeded.
func (r *JSONPendingPushRepository) Delete(ctx context.Context, sessionID string) error {
	lockFile := r.lockFilename(sessionID)
	lock := flock.New(lockFile)
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := r.acquireLock(lockCtx, lock.TryLock)
	if err != nil {
		return fmt.Errorf("failed to acquire lock for deletion: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock within timeout")
	}
	defer r.unlock(lock)
	if err := r.fs.Remove(r.recordFilename(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record file: %w", err)
	}
	if removeErr := r.fs.Remove(lockFile); removeErr != nil && !os.IsNotExist(removeErr) {
		fmt.Fprintf(os.Stderr, "warning: failed to remove lock file: %v\n", removeErr)
	}
	return nil
}

// Exists checks if a pending-push record exists.
func (r *JSONPendingPushRepository) Exists(_ context.Context, sessionID string) (bool, error) {
	_, err := r.fs.Stat(r.recordFilename(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check record file: %w", err)
	}
	return true, nil
}

// acquireLock polls the given try function until it succeeds or the context
// expires.
func (r *JSONPendingPushRepository) acquireLock(ctx context.Context, try func() (bool, error)) (bool, error) {
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
			locked, err := try()
			if err != nil {
				return false, err
			}
			if locked {
				return true, nil
			}
		}
	}
}

func (r *JSONPendingPushRepository) unlock(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to unlock file: %v\n", err)
	}
}

func (r *JSONPendingPushRepository) recordFilename(sessionID string) string {
	return filepath.Join(r.stateDir, fmt.Sprintf("pending-%s.json", sessionID))
}

func (r *JSONPendingPushRepository) lockFilename(sessionID string) string {
	return filepath.Join(r.stateDir, fmt.Sprintf(".pending-%s.lock", sessionID))
}

// sessionIDFromFilename extracts the session ID from a record filename, or
// returns empty for files that are not records.
func sessionIDFromFilename(name string) string {
	if !strings.HasPrefix(name, "pending-") || !strings.HasSuffix(name, ".json") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, "pending-"), ".json")
}

// checksum calculates the SHA-256 checksum of data.
func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
