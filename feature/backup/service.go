package backup

import (
	"context"

	"gradevault/core/reconcile"
	"gradevault/feature/votes"
	"gradevault/feature/votes/models"

	"go.uber.org/zap"
)

// Service orchestrates backup export and restore. The vote store is both
// the export source and the engine's storage collaborator.
type Service struct {
	engine   *reconcile.Engine
	store    *votes.Store
	archiver *Archiver // nil when object storage is disabled
	logger   *zap.Logger
}

// NewService creates a backup service. archiver may be nil.
func NewService(store *votes.Store, archiver *Archiver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:   reconcile.NewEngine(store, logger),
		store:    store,
		archiver: archiver,
		logger:   logger,
	}
}

// Export returns the owner's records, newest first, for the client to
// store as its backup.
func (s *Service) Export(ctx context.Context, ownerID string) ([]models.Vote, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Restore reconciles the submitted snapshot with the owner's persisted
// one under the given policy and commits the result. Returns the number
// of records committed.
func (s *Service) Restore(ctx context.Context, ownerID string, client reconcile.Snapshot, policy reconcile.Policy) (int, error) {
	s.archivePreImage(ctx, ownerID)

	_, count, err := s.engine.Reconcile(ctx, ownerID, client, policy)
	return count, err
}

// archivePreImage stores the current server snapshot before it is
// replaced. Best-effort: failures are logged, never surfaced.
func (s *Service) archivePreImage(ctx context.Context, ownerID string) {
	if s.archiver == nil {
		return
	}

	pre, err := s.store.ReadAll(ctx, ownerID)
	if err != nil {
		s.logger.Warn("pre-restore snapshot read failed, skipping archive",
			zap.String("owner_id", ownerID), zap.Error(err))
		return
	}
	if len(pre) == 0 {
		return
	}

	key, err := s.archiver.ArchivePreImage(ctx, ownerID, pre)
	if err != nil {
		s.logger.Warn("pre-restore archive failed",
			zap.String("owner_id", ownerID), zap.Int("records", len(pre)), zap.Error(err))
		return
	}
	s.logger.Info("pre-restore snapshot archived",
		zap.String("owner_id", ownerID), zap.Int("records", len(pre)), zap.String("object", key))
}
