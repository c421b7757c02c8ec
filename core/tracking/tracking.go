package tracking

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Application records that a holiday pack has been applied to a subject's
// calendar.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SubjectID string    `gorm:"size:64;uniqueIndex:idx_subject_pack" json:"subject_id"`
	PackID    string    `gorm:"size:64;uniqueIndex:idx_subject_pack" json:"pack_id"`
	AppliedAt time.Time `json:"applied_at"`
}

// TableName fixes the table name regardless of GORM's pluralization.
func (Application) TableName() string {
	return "pack_applications"
}

// Store persists pack applications.
type Store struct {
	db *gorm.DB
}

// NewStore creates a tracking store and ensures its schema exists.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Application{}); err != nil {
		return nil, fmt.Errorf("migrate tracking schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithoutMigrate wraps an existing connection without touching the
// schema. Intended for tests that stub the database.
func NewStoreWithoutMigrate(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Record marks the given packs as applied to the subject. Re-recording an
// existing (subject, pack) pair refreshes its timestamp.
func (s *Store) Record(ctx context.Context, subjectID string, packIDs []string) error {
	if len(packIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]Application, 0, len(packIDs))
	for _, packID := range packIDs {
		rows = append(rows, Application{SubjectID: subjectID, PackID: packID, AppliedAt: now})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}, {Name: "pack_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"applied_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("record pack applications for %s: %w", subjectID, err)
	}
	return nil
}

// History returns the packs applied to a subject, most recent first.
func (s *Store) History(ctx context.Context, subjectID string) ([]Application, error) {
	var rows []Application
	err := s.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("applied_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load pack history for %s: %w", subjectID, err)
	}
	return rows, nil
}
