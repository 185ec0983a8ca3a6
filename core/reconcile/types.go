package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks a malformed restore request: an unrecognized policy
// or a client payload that is not a record sequence. Storage is never
// touched when this is returned.
var ErrInvalidInput = errors.New("invalid reconcile input")

// ErrStorageFailure marks a failed atomic commit. The store's atomicity
// guarantee means the owner's pre-restore records are still intact; the
// caller may retry.
var ErrStorageFailure = errors.New("reconcile storage failure")

// Record is the unit being reconciled: one grade entry as seen by either
// side of a restore.
type Record struct {
	// LogicalID is the stable cross-replica key. Unique within an owner's
	// committed snapshot; generated when an input record omits it.
	LogicalID string `json:"logicalId"`

	// OwnerID is the owning account. Always rewritten to the authenticated
	// caller on commit, whatever the input claims.
	OwnerID string `json:"ownerId"`

	// Label, Subject and ExamType are descriptive attributes. The engine
	// never inspects them for merge decisions.
	Label    string `json:"label"`
	Subject  string `json:"subject"`
	ExamType string `json:"examType"`

	// Value is the numeric score, opaque to the engine.
	Value float64 `json:"value"`

	// CreatedAt defaults to the commit time when the input omits it.
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is an ordered sequence of records representing one side's view
// of an owner's data at a point in time. Source snapshots are never mutated
// in place; the engine only builds new ones.
type Snapshot []Record

// Policy selects which side wins when both snapshots carry a record with
// the same logical id.
type Policy int

const (
	// PolicyReplace discards the server snapshot and keeps the client
	// snapshot verbatim.
	PolicyReplace Policy = iota
	// PolicyPreferClient merges both snapshots; client records win on
	// collision.
	PolicyPreferClient
	// PolicyPreferServer merges both snapshots; server records win on
	// collision.
	PolicyPreferServer
)

// ParsePolicy maps a wire-level policy name to its Policy value. The short
// names ("backup", "server") are what existing clients send; the explicit
// prefer-* spellings are accepted as aliases.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "replace":
		return PolicyReplace, nil
	case "backup", "prefer-client":
		return PolicyPreferClient, nil
	case "server", "prefer-server":
		return PolicyPreferServer, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, s)
	}
}

// String returns the canonical wire name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicyPreferClient:
		return "backup"
	case PolicyPreferServer:
		return "server"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Store is the storage collaborator: owner-scoped access to the persisted
// record set. ReplaceAll must be atomic — it either fully replaces the
// owner's records or leaves them untouched. A concurrent reader must never
// observe the set mid-replacement.
type Store interface {
	// ReadAll returns every persisted record for the owner, in a stable
	// order.
	ReadAll(ctx context.Context, ownerID string) (Snapshot, error)

	// ReplaceAll atomically discards the owner's records and inserts the
	// supplied snapshot, returning the number inserted. No partial effect
	// on error.
	ReplaceAll(ctx context.Context, ownerID string, snap Snapshot) (int, error)

	// DeleteAll removes every record for the owner. Used when a restore
	// produces an empty final snapshot.
	DeleteAll(ctx context.Context, ownerID string) error
}
