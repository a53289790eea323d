package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to improve the fetch and lookup queries.
func AddIndexes(db *gorm.DB) error {
	// The fetch query orders by (event_timestamp, id)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_raw_timestamp_id ON events_raw (event_timestamp, id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_raw_user_pseudo_id ON events_raw (user_pseudo_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_raw_event_name ON events_raw (event_name)").Error; err != nil {
		return err
	}

	// Output lookup by view name
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_analytics_views_view_name ON analytics_views (view_name)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_analytics_reports_kind ON analytics_reports (kind)").Error; err != nil {
		return err
	}

	return nil
}
