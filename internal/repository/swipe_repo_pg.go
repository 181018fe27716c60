package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movievibe/lobbyhub/internal/model"
)

type pgSwipeRepository struct {
	db *gorm.DB
}

func NewPGSwipeRepository(db *gorm.DB) SwipeRepository {
	return &pgSwipeRepository{db: db}
}

// LockItem takes a transaction-scoped advisory lock keyed on the
// (lobby_id, item_id) pair. hashtextextended folds the key into the
// bigint lock space; postgres releases the lock when the enclosing
// transaction ends.
func (r *pgSwipeRepository) LockItem(ctx context.Context, lobbyID string, itemID int64) error {
	key := fmt.Sprintf("%s:%d", lobbyID, itemID)
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error
}

func (r *pgSwipeRepository) Upsert(ctx context.Context, swipe *model.Swipe) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lobby_id"}, {Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"decision", "swiped_at"}),
	}).Create(swipe).Error
}

func (r *pgSwipeRepository) CountLikes(ctx context.Context, lobbyID string, itemID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Swipe{}).
		Where("lobby_id = ? AND item_id = ? AND decision = ?", lobbyID, itemID, model.DecisionLike).
		Count(&count).Error
	return count, err
}
