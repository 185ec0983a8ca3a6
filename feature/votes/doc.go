// Package votes implements per-user grade record management.
//
// A vote is one grade entry: a label, subject, exam type and numeric value,
// owned by exactly one account. Besides the CRUD endpoints, this package
// owns the persisted record store, which doubles as the storage
// collaborator of the backup reconciliation engine: it provides the
// owner-scoped ReadAll / ReplaceAll / DeleteAll operations, with ReplaceAll
// running delete-then-insert inside a single database transaction so a
// failed restore never leaves a partially replaced record set.
//
// # HTTP Endpoints (authenticated)
//
//   - POST   /api/votes      : Create a vote (all fields required).
//   - GET    /api/votes      : List the caller's votes, newest first.
//   - PUT    /api/votes/:id  : Update a vote (full replacement).
//   - DELETE /api/votes/:id  : Delete a vote.
package votes
