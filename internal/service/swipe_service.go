package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/config"
	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/repository"
)

type SwipeService interface {
	// RecordSwipe stores the member's decision and reports whether the item
	// is matched for the lobby. The report answers "is this item matched",
	// not "did this call cause the match": once the threshold is crossed,
	// every later like on the item keeps reporting true.
	RecordSwipe(ctx context.Context, lobbyID, userID string, itemID int64, decision model.Decision) (bool, error)
}

type swipeService struct {
	store  repository.Store
	cfg    config.LobbyConfig
	logger *zap.Logger
}

func NewSwipeService(store repository.Store, cfg config.LobbyConfig, logger *zap.Logger) SwipeService {
	return &swipeService{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *swipeService) RecordSwipe(ctx context.Context, lobbyID, userID string, itemID int64, decision model.Decision) (bool, error) {
	lobbyID = normalizeCode(lobbyID)
	if lobbyID == "" {
		return false, fmt.Errorf("lobby_id: %w", ErrEmptyIdentifier)
	}
	if userID == "" {
		return false, fmt.Errorf("user_id: %w", ErrEmptyIdentifier)
	}
	if !decision.Valid() {
		return false, fmt.Errorf("%q: %w", decision, ErrInvalidDecision)
	}

	var matched bool
	err := s.withTimeout(ctx, func(ctx context.Context) error {
		return s.store.Transaction(ctx, func(tx repository.Store) error {
			// Swipes on the same item run one transaction at a time.
			// Without this, two likes crossing the threshold together
			// can each count only the committed rows, both stay below
			// the threshold, and the match is never written.
			if err := tx.Swipes().LockItem(ctx, lobbyID, itemID); err != nil {
				return err
			}

			isMember, err := tx.Members().Exists(ctx, lobbyID, userID)
			if err != nil {
				return err
			}
			if !isMember {
				return ErrNotMember
			}

			now := time.Now()
			if err := tx.Swipes().Upsert(ctx, &model.Swipe{
				LobbyID:  lobbyID,
				UserID:   userID,
				ItemID:   itemID,
				Decision: decision,
				SwipedAt: now,
			}); err != nil {
				return err
			}

			if decision != model.DecisionLike {
				return nil
			}

			// Recompute from the authoritative swipe rows instead of a
			// counter: a user toggling like/skip/like must not desync.
			likes, err := tx.Swipes().CountLikes(ctx, lobbyID, itemID)
			if err != nil {
				return err
			}
			if likes >= int64(s.cfg.MatchThreshold) {
				if err := tx.Matches().InsertIfAbsent(ctx, &model.Match{
					LobbyID:   lobbyID,
					ItemID:    itemID,
					MatchedAt: now,
				}); err != nil {
					return err
				}
				matched = true
				return nil
			}

			// Below the threshold, but the item may have matched earlier
			// and a liker since changed their mind; matches are permanent.
			matched, err = tx.Matches().Exists(ctx, lobbyID, itemID)
			return err
		})
	})
	if err != nil {
		return false, storeErr("record swipe", err)
	}

	if matched {
		s.logger.Info("item matched",
			zap.String("lobby_id", lobbyID),
			zap.Int64("item_id", itemID))
	}
	return matched, nil
}

func (s *swipeService) withTimeout(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()
	return fn(ctx)
}

var _ SwipeService = (*swipeService)(nil)
