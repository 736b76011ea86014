package snapshot

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRow is the single-row table backing the Postgres snapshot store.
// The whole collection lives in one JSON column, keyed by snapshot name.
type SnapshotRow struct {
	Key       string         `gorm:"primaryKey;size:128"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (SnapshotRow) TableName() string {
	return "lead_snapshots"
}

// Postgres persists the snapshot in a Postgres row via GORM.
type Postgres struct {
	db  *gorm.DB
	key string
}

func NewPostgres(db *gorm.DB, key string) (*Postgres, error) {
	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, fmt.Errorf("could not migrate snapshot table: %w", err)
	}
	return &Postgres{db: db, key: key}, nil
}

func (p *Postgres) Load() ([]byte, bool, error) {
	var row SnapshotRow
	err := p.db.First(&row, "key = ?", p.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read snapshot row %s: %w", p.key, err)
	}
	return []byte(row.Data), true, nil
}

func (p *Postgres) Save(data []byte) error {
	row := SnapshotRow{
		Key:       p.key,
		Data:      datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("could not write snapshot row %s: %w", p.key, err)
	}
	return nil
}
