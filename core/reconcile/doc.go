// Package reconcile implements the backup reconciliation engine: the logic
// that merges a client-submitted snapshot of an owner's grade records with
// the server's persisted snapshot when a device restores from backup.
//
// Records from the two sides are matched by their logical identifier, a
// stable cross-replica key assigned at creation. Database-assigned identity
// is useless for this comparison because the two snapshots are independent
// copies produced by devices that never shared database ids.
//
// # Policies
//
// A restore names one of three policies:
//
//   - Replace: the client snapshot becomes the final snapshot verbatim; the
//     server snapshot is never read.
//   - PreferClient: union of both snapshots; on a logical-id collision the
//     client's record wins whole (no field-level blending).
//   - PreferServer: union of both snapshots; the server's record wins.
//
// # Commit
//
// The final snapshot replaces the owner's persisted record set through a
// single ReplaceAll call on the Store collaborator, which must make the
// delete-then-insert pair atomic. A failed restore therefore leaves the
// owner's prior records fully intact; the engine performs no rollback and
// no retry of its own.
//
// # Usage
//
//	engine := reconcile.NewEngine(store, logger)
//	final, n, err := engine.Reconcile(ctx, ownerID, clientSnap, reconcile.PolicyPreferClient)
//
// The merge itself is a pure in-memory computation; the engine holds no
// cross-request state and two concurrent restores for the same owner are
// resolved last-writer-wins by the store.
package reconcile
