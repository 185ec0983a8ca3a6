// Package logger provides the structured logging facility, built on Zap.
//
// It produces JSON logs in production and colored console logs when the
// level is debug, and integrates with the Fiber request pipeline through
// WithRayID, which attaches the per-request ray_id so every log line of a
// request can be correlated.
//
// Restore operations log owner ids, policies and record counts, never
// record contents.
package logger
