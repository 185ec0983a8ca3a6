// Package backup implements backup and restore of a user's grade records.
//
// GET returns the owner's current records for the client to store as a
// backup. POST restores a backup: the submitted snapshot is reconciled
// with the server's snapshot by the core/reconcile engine under the
// policy named in the request, and the result atomically replaces the
// owner's persisted records.
//
// When object storage is configured, the server snapshot is archived as a
// JSON object before the replace, so a mistaken restore can be recovered
// by an operator. Archiving is best-effort: a failed archive write logs a
// warning and does not block the restore.
//
// # HTTP Endpoints (authenticated)
//
//   - GET  /api/backup : Export the caller's records.
//   - POST /api/backup : Restore a backup under a reconciliation policy.
package backup
