// Package models defines the persisted vote schema.
package models

import (
	"time"

	"gradevault/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote is one grade record. LogicalID is the stable cross-replica key the
// backup engine reconciles on; ID is storage identity only and never
// leaves this server's database.
type Vote struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"column:owner_id;size:36;uniqueIndex:idx_votes_owner_logical" json:"ownerId"`
	LogicalID string    `gorm:"column:logical_id;size:36;uniqueIndex:idx_votes_owner_logical" json:"logicalId"`
	Label     string    `gorm:"column:label;size:255" json:"label"`
	Subject   string    `gorm:"column:subject;size:255" json:"subject"`
	ExamType  string    `gorm:"column:exam_type;size:100" json:"examType"`
	Value     float64   `gorm:"column:value" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

// TableName overrides the GORM table name.
func (Vote) TableName() string {
	return "votes"
}

// BeforeCreate assigns storage and logical identity when absent.
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.LogicalID == "" {
		v.LogicalID = uuid.NewString()
	}
	return nil
}

// ToRecord converts a persisted vote into an engine record.
func (v Vote) ToRecord() reconcile.Record {
	return reconcile.Record{
		LogicalID: v.LogicalID,
		OwnerID:   v.OwnerID,
		Label:     v.Label,
		Subject:   v.Subject,
		ExamType:  v.ExamType,
		Value:     v.Value,
		CreatedAt: v.CreatedAt,
	}
}

// FromRecord converts an engine record into a persistable vote. Storage
// identity is left empty for BeforeCreate to assign.
func FromRecord(r reconcile.Record) Vote {
	return Vote{
		OwnerID:   r.OwnerID,
		LogicalID: r.LogicalID,
		Label:     r.Label,
		Subject:   r.Subject,
		ExamType:  r.ExamType,
		Value:     r.Value,
		CreatedAt: r.CreatedAt,
	}
}
