package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movievibe/lobbyhub/internal/model"
)

type pgMatchRepository struct {
	db *gorm.DB
}

func NewPGMatchRepository(db *gorm.DB) MatchRepository {
	return &pgMatchRepository{db: db}
}

func (r *pgMatchRepository) InsertIfAbsent(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lobby_id"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(match).Error
}

func (r *pgMatchRepository) Exists(ctx context.Context, lobbyID string, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("lobby_id = ? AND item_id = ?", lobbyID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *pgMatchRepository) ListRecentByLobby(ctx context.Context, lobbyID string, limit int) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("lobby_id = ?", lobbyID).
		Order("matched_at DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
