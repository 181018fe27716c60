package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey signals a unique-key conflict without exposing the
// storage driver to callers. Lobby creation treats it as "regenerate the
// code and retry".
var ErrDuplicateKey = errors.New("duplicate key")

// Store bundles the per-aggregate repositories and lets a caller run a
// multi-repository mutation as one atomic unit. Inside Transaction the
// callback receives a Store bound to the transaction handle; any error
// rolls the whole unit back.
type Store interface {
	Lobbies() LobbyRepository
	Members() MemberRepository
	Swipes() SwipeRepository
	Matches() MatchRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}

type pgStore struct {
	db *gorm.DB
}

func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Lobbies() LobbyRepository  { return NewPGLobbyRepository(s.db) }
func (s *pgStore) Members() MemberRepository { return NewPGMemberRepository(s.db) }
func (s *pgStore) Swipes() SwipeRepository   { return NewPGSwipeRepository(s.db) }
func (s *pgStore) Matches() MatchRepository  { return NewPGMatchRepository(s.db) }

func (s *pgStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}
