package migrations

import (
	"github.com/nocsaren/emoji-oracle-analytics/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates the pipeline's output tables. The raw event export table
// is owned by the ingestion job and is never migrated here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.ViewRow{},
		&entities.ReportRow{},
	)
}
