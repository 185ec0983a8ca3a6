package votes

import (
	"context"
	"errors"
	"fmt"

	"gradevault/core/reconcile"
	"gradevault/feature/votes/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a vote does not exist or belongs to a
// different owner.
var ErrNotFound = errors.New("vote not found")

// insertBatchSize bounds the row count per INSERT during a restore.
const insertBatchSize = 100

// Store is the GORM-backed vote store. It serves both the CRUD endpoints
// and, through ReadAll/ReplaceAll/DeleteAll, acts as the storage
// collaborator of the reconciliation engine.
type Store struct {
	db *gorm.DB
}

// NewStore creates a vote store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a single vote.
func (s *Store) Create(ctx context.Context, v *models.Vote) error {
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's votes, newest first.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]models.Vote, error) {
	var out []models.Vote
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return out, nil
}

// Get returns one vote scoped to its owner.
func (s *Store) Get(ctx context.Context, ownerID, id string) (*models.Vote, error) {
	var v models.Vote
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load vote: %w", err)
	}
	return &v, nil
}

// Update saves a full vote row.
func (s *Store) Update(ctx context.Context, v *models.Vote) error {
	if err := s.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}
	return nil
}

// Delete removes one vote scoped to its owner.
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Vote{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete vote: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReadAll implements reconcile.Store. Order is stable: creation time, then
// storage id as tie-break.
func (s *Store) ReadAll(ctx context.Context, ownerID string) (reconcile.Snapshot, error) {
	var rows []models.Vote
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap := make(reconcile.Snapshot, len(rows))
	for i, v := range rows {
		snap[i] = v.ToRecord()
	}
	return snap, nil
}

// ReplaceAll implements reconcile.Store. The owner's rows are deleted and
// the snapshot inserted inside one transaction: any insert failure rolls
// everything back and the pre-restore rows stay visible.
func (s *Store) ReplaceAll(ctx context.Context, ownerID string, snap reconcile.Snapshot) (int, error) {
	rows := make([]models.Vote, len(snap))
	for i, r := range snap {
		rows[i] = models.FromRecord(r)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, insertBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return len(rows), nil
}

// DeleteAll implements reconcile.Store.
func (s *Store) DeleteAll(ctx context.Context, ownerID string) error {
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&models.Vote{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
