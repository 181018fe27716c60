package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movievibe/lobbyhub/internal/model"
)

type pgMemberRepository struct {
	db *gorm.DB
}

func NewPGMemberRepository(db *gorm.DB) MemberRepository {
	return &pgMemberRepository{db: db}
}

func (r *pgMemberRepository) Upsert(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lobby_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nickname", "joined_at"}),
	}).Create(member).Error
}

func (r *pgMemberRepository) Exists(ctx context.Context, lobbyID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("lobby_id = ? AND user_id = ?", lobbyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *pgMemberRepository) ListByLobby(ctx context.Context, lobbyID string) ([]model.Member, error) {
	// Non-nil even when empty so an empty lobby serializes as [] not null.
	members := []model.Member{}
	err := r.db.WithContext(ctx).
		Where("lobby_id = ?", lobbyID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
