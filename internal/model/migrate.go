package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Lobby{},
		&Member{},
		&Swipe{},
		&Match{},
	); err != nil {
		return err
	}

	// Covering index for the like-count recompute on every like swipe.
	return db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_swipes_lobby_item " +
			"ON lobby_swipes (lobby_id, item_id)",
	).Error
}
