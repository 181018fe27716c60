package repository

import (
	"context"

	"movievibe/lobbyhub/internal/model"
)

type LobbyRepository interface {
	// Create inserts a new lobby row. Returns ErrDuplicateKey when the
	// generated code is already taken.
	Create(ctx context.Context, lobby *model.Lobby) error
	// GetByID returns the lobby or (nil, nil) when no such code exists.
	GetByID(ctx context.Context, id string) (*model.Lobby, error)
}
