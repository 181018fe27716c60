package repository

import (
	"context"

	"movievibe/lobbyhub/internal/model"
)

type SwipeRepository interface {
	// LockItem serializes the current transaction against every other
	// swipe transaction on the same (lobby_id, item_id). Concurrent likes
	// by different users touch different swipe rows, so row locks alone
	// cannot stop two like-count recomputes from each missing the other's
	// uncommitted write; this lock makes the count-then-insert sequence
	// run one transaction at a time per item. Must be called inside a
	// transaction; the lock releases on commit or rollback.
	LockItem(ctx context.Context, lobbyID string, itemID int64) error
	// Upsert records the swipe, replacing any prior decision for the same
	// (lobby_id, user_id, item_id) triple. The row-level conflict clause is
	// what serializes near-simultaneous swipes on the same key.
	Upsert(ctx context.Context, swipe *model.Swipe) error
	// CountLikes returns how many distinct members currently have
	// decision=like recorded for the item.
	CountLikes(ctx context.Context, lobbyID string, itemID int64) (int64, error)
}
