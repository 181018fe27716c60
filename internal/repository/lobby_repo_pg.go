package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"movievibe/lobbyhub/internal/model"
)

type pgLobbyRepository struct {
	db *gorm.DB
}

func NewPGLobbyRepository(db *gorm.DB) LobbyRepository {
	return &pgLobbyRepository{db: db}
}

func (r *pgLobbyRepository) Create(ctx context.Context, lobby *model.Lobby) error {
	err := r.db.WithContext(ctx).Create(lobby).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("lobby %q: %w", lobby.ID, ErrDuplicateKey)
	}
	return err
}

func (r *pgLobbyRepository) GetByID(ctx context.Context, id string) (*model.Lobby, error) {
	var lobby model.Lobby
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lobby).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lobby, nil
}
