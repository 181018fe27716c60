package repository

import (
	"context"

	"movievibe/lobbyhub/internal/model"
)

type MatchRepository interface {
	// InsertIfAbsent records the match unless the (lobby_id, item_id) pair
	// already exists. Conflict-safe at the storage layer so two concurrent
	// threshold-crossing likes cannot double-insert.
	InsertIfAbsent(ctx context.Context, match *model.Match) error
	Exists(ctx context.Context, lobbyID string, itemID int64) (bool, error)
	// ListRecentByLobby returns matches ordered by match time descending,
	// capped to limit.
	ListRecentByLobby(ctx context.Context, lobbyID string, limit int) ([]model.Match, error)
}
