package repository

import (
	"context"

	"movievibe/lobbyhub/internal/model"
)

type MemberRepository interface {
	// Upsert inserts the member or, when the (lobby_id, user_id) pair
	// already exists, refreshes nickname and joined_at in place.
	Upsert(ctx context.Context, member *model.Member) error
	Exists(ctx context.Context, lobbyID, userID string) (bool, error)
	// ListByLobby returns members ordered by join time ascending.
	ListByLobby(ctx context.Context, lobbyID string) ([]model.Member, error)
}
