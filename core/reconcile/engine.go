package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine orchestrates a restore: validate input, load the server snapshot
// when the policy requires it, compute the final snapshot, commit it
// atomically through the store.
type Engine struct {
	store  Store
	logger *zap.Logger
}

// NewEngine creates a reconciliation engine bound to a store.
func NewEngine(store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, logger: logger}
}

// Reconcile merges the client snapshot with the owner's persisted snapshot
// under the given policy and commits the result. It returns the final
// snapshot and the number of records committed.
//
// Failures wrap ErrInvalidInput (bad policy, storage untouched) or
// ErrStorageFailure (commit failed, pre-image intact per the store's
// atomicity guarantee).
func (e *Engine) Reconcile(ctx context.Context, ownerID string, client Snapshot, policy Policy) (Snapshot, int, error) {
	now := time.Now().UTC()

	var final Snapshot
	switch policy {
	case PolicyReplace:
		// Server snapshot is intentionally not read.
		final = normalizeAll(ownerID, client, now)

	case PolicyPreferClient, PolicyPreferServer:
		server, err := e.store.ReadAll(ctx, ownerID)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: reading server snapshot: %v", ErrStorageFailure, err)
		}

		first, second := client, server
		if policy == PolicyPreferServer {
			first, second = server, client
		}
		final = merge(ownerID, first, second, now)

		e.logger.Debug("computed merge snapshot",
			zap.String("owner_id", ownerID),
			zap.Stringer("policy", policy),
			zap.Int("client_records", len(client)),
			zap.Int("server_records", len(server)),
			zap.Int("final_records", len(final)),
		)

	default:
		return nil, 0, fmt.Errorf("%w: unknown policy %d", ErrInvalidInput, int(policy))
	}

	count, err := e.commit(ctx, ownerID, final)
	if err != nil {
		e.logger.Error("restore commit failed",
			zap.String("owner_id", ownerID),
			zap.Stringer("policy", policy),
			zap.Int("client_records", len(client)),
			zap.Int("final_records", len(final)),
			zap.Error(err),
		)
		return nil, 0, err
	}

	e.logger.Info("restore committed",
		zap.String("owner_id", ownerID),
		zap.Stringer("policy", policy),
		zap.Int("client_records", len(client)),
		zap.Int("committed_records", count),
	)
	return final, count, nil
}

// commit replaces the owner's record set with the final snapshot as one
// logical transaction. The store carries the atomicity guarantee; the
// engine does no rollback of its own.
func (e *Engine) commit(ctx context.Context, ownerID string, final Snapshot) (int, error) {
	if len(final) == 0 {
		if err := e.store.DeleteAll(ctx, ownerID); err != nil {
			return 0, fmt.Errorf("%w: deleting records: %v", ErrStorageFailure, err)
		}
		return 0, nil
	}

	count, err := e.store.ReplaceAll(ctx, ownerID, final)
	if err != nil {
		return 0, fmt.Errorf("%w: replacing records: %v", ErrStorageFailure, err)
	}
	return count, nil
}

// merge builds the union of first and second keyed by logical id. Records
// from first always win on collision and keep their full field set; second
// only contributes ids first does not have. Output order is insertion
// order, first then second — never reordered by timestamp.
func merge(ownerID string, first, second Snapshot, now time.Time) Snapshot {
	index := make(map[string]int, len(first)+len(second))
	out := make(Snapshot, 0, len(first)+len(second))

	for _, r := range first {
		rec := normalize(ownerID, r, now)
		if i, ok := index[rec.LogicalID]; ok {
			// A duplicate id within one source means upstream corruption,
			// not a conflict for the policy: the later record overwrites
			// in place, keeping the original position.
			out[i] = rec
			continue
		}
		index[rec.LogicalID] = len(out)
		out = append(out, rec)
	}

	for _, r := range second {
		rec := normalize(ownerID, r, now)
		if _, ok := index[rec.LogicalID]; ok {
			continue
		}
		index[rec.LogicalID] = len(out)
		out = append(out, rec)
	}

	return out
}

// normalizeAll normalizes every record of a snapshot into a fresh one.
func normalizeAll(ownerID string, snap Snapshot, now time.Time) Snapshot {
	out := make(Snapshot, len(snap))
	for i, r := range snap {
		out[i] = normalize(ownerID, r, now)
	}
	return out
}

// normalize fills the identity fields a committed record must carry: a
// logical id (generated when absent), the authenticated owner (whatever
// the input claimed), and a creation time.
func normalize(ownerID string, r Record, now time.Time) Record {
	if r.LogicalID == "" {
		r.LogicalID = uuid.NewString()
	}
	r.OwnerID = ownerID
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	return r
}
