package service_test

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/repository"
)

// fakeStore is an in-memory repository.Store. Individual operations are
// atomic but transactions interleave, so two concurrent callbacks can
// observe each other's intermediate state unless they take the item lock,
// the same discipline the postgres store enforces with advisory locks.
// A failed callback restores the previous state, mirroring rollback.
type fakeStore struct {
	mu        sync.Mutex
	lobbies   map[string]model.Lobby
	members   map[string]model.Member
	swipes    map[string]model.Swipe
	matches   map[string]model.Match
	itemLocks map[string]*sync.Mutex

	// lobbyCreateErrs are consumed one per lobby Create call before the
	// normal path runs; a nil entry means "behave normally".
	lobbyCreateErrs []error
	// transactionErr, when set, fails every Transaction immediately.
	transactionErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lobbies:   make(map[string]model.Lobby),
		members:   make(map[string]model.Member),
		swipes:    make(map[string]model.Swipe),
		matches:   make(map[string]model.Match),
		itemLocks: make(map[string]*sync.Mutex),
	}
}

func (s *fakeStore) Lobbies() repository.LobbyRepository  { return &fakeLobbyRepo{s} }
func (s *fakeStore) Members() repository.MemberRepository { return &fakeMemberRepo{s} }
func (s *fakeStore) Swipes() repository.SwipeRepository   { return &fakeSwipeRepo{s: s} }
func (s *fakeStore) Matches() repository.MatchRepository  { return &fakeMatchRepo{s} }

func (s *fakeStore) Transaction(_ context.Context, fn func(repository.Store) error) error {
	if s.transactionErr != nil {
		return s.transactionErr
	}

	s.mu.Lock()
	lobbies := maps.Clone(s.lobbies)
	members := maps.Clone(s.members)
	swipes := maps.Clone(s.swipes)
	matches := maps.Clone(s.matches)
	s.mu.Unlock()

	tx := &fakeTx{s: s}
	defer tx.releaseLocks()

	if err := fn(tx); err != nil {
		s.mu.Lock()
		s.lobbies = lobbies
		s.members = members
		s.swipes = swipes
		s.matches = matches
		s.mu.Unlock()
		return err
	}
	return nil
}

// fakeTx scopes item locks to one Transaction callback; they release when
// the callback returns, like pg_advisory_xact_lock at transaction end.
type fakeTx struct {
	s    *fakeStore
	held []*sync.Mutex
}

func (t *fakeTx) Lobbies() repository.LobbyRepository  { return &fakeLobbyRepo{t.s} }
func (t *fakeTx) Members() repository.MemberRepository { return &fakeMemberRepo{t.s} }
func (t *fakeTx) Swipes() repository.SwipeRepository   { return &fakeSwipeRepo{s: t.s, tx: t} }
func (t *fakeTx) Matches() repository.MatchRepository  { return &fakeMatchRepo{t.s} }

func (t *fakeTx) Transaction(_ context.Context, fn func(repository.Store) error) error {
	return fn(t)
}

func (t *fakeTx) releaseLocks() {
	for _, l := range t.held {
		l.Unlock()
	}
	t.held = nil
}

type fakeLobbyRepo struct{ s *fakeStore }

func (r *fakeLobbyRepo) Create(_ context.Context, lobby *model.Lobby) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lobbyCreateErrs) > 0 {
		err := s.lobbyCreateErrs[0]
		s.lobbyCreateErrs = s.lobbyCreateErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := s.lobbies[lobby.ID]; ok {
		return repository.ErrDuplicateKey
	}
	s.lobbies[lobby.ID] = *lobby
	return nil
}

func (r *fakeLobbyRepo) GetByID(_ context.Context, id string) (*model.Lobby, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lobby, ok := r.s.lobbies[id]
	if !ok {
		return nil, nil
	}
	return &lobby, nil
}

type fakeMemberRepo struct{ s *fakeStore }

func (r *fakeMemberRepo) Upsert(_ context.Context, member *model.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.members[memberKey(member.LobbyID, member.UserID)] = *member
	return nil
}

func (r *fakeMemberRepo) Exists(_ context.Context, lobbyID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.members[memberKey(lobbyID, userID)]
	return ok, nil
}

func (r *fakeMemberRepo) ListByLobby(_ context.Context, lobbyID string) ([]model.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	members := []model.Member{}
	for _, m := range r.s.members {
		if m.LobbyID == lobbyID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}

type fakeSwipeRepo struct {
	s  *fakeStore
	tx *fakeTx
}

func (r *fakeSwipeRepo) LockItem(_ context.Context, lobbyID string, itemID int64) error {
	if r.tx == nil {
		return nil
	}
	key := matchKey(lobbyID, itemID)
	r.s.mu.Lock()
	lock, ok := r.s.itemLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.s.itemLocks[key] = lock
	}
	r.s.mu.Unlock()
	lock.Lock()
	r.tx.held = append(r.tx.held, lock)
	return nil
}

func (r *fakeSwipeRepo) Upsert(_ context.Context, swipe *model.Swipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.swipes[swipeKey(swipe.LobbyID, swipe.UserID, swipe.ItemID)] = *swipe
	return nil
}

func (r *fakeSwipeRepo) CountLikes(_ context.Context, lobbyID string, itemID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, sw := range r.s.swipes {
		if sw.LobbyID == lobbyID && sw.ItemID == itemID && sw.Decision == model.DecisionLike {
			count++
		}
	}
	return count, nil
}

type fakeMatchRepo struct{ s *fakeStore }

func (r *fakeMatchRepo) InsertIfAbsent(_ context.Context, match *model.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := matchKey(match.LobbyID, match.ItemID)
	if _, ok := r.s.matches[key]; ok {
		return nil
	}
	r.s.matches[key] = *match
	return nil
}

func (r *fakeMatchRepo) Exists(_ context.Context, lobbyID string, itemID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.matches[matchKey(lobbyID, itemID)]
	return ok, nil
}

func (r *fakeMatchRepo) ListRecentByLobby(_ context.Context, lobbyID string, limit int) ([]model.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matches []model.Match
	for _, m := range r.s.matches {
		if m.LobbyID == lobbyID {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchedAt.After(matches[j].MatchedAt)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func seedLobby(s *fakeStore, code string, active bool) {
	s.lobbies[code] = model.Lobby{ID: code, Active: active, CreatedAt: time.Now()}
}

func seedMember(s *fakeStore, lobbyID, userID string) {
	s.members[memberKey(lobbyID, userID)] = model.Member{
		LobbyID:  lobbyID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
}

func memberKey(lobbyID, userID string) string { return lobbyID + "|" + userID }

func swipeKey(lobbyID, userID string, itemID int64) string {
	return fmt.Sprintf("%s|%s|%d", lobbyID, userID, itemID)
}

func matchKey(lobbyID string, itemID int64) string {
	return fmt.Sprintf("%s|%d", lobbyID, itemID)
}
