package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/repository"
	"movievibe/lobbyhub/internal/service"
)

func newSwipeService(store repository.Store) service.SwipeService {
	return service.NewSwipeService(store, testLobbyConfig(), zap.NewNop())
}

func TestRecordSwipeNonMember(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	svc := newSwipeService(store)

	_, err := svc.RecordSwipe(context.Background(), "ab12cd34ef56gh78", "mallory", 500, model.DecisionLike)
	assert.ErrorIs(t, err, service.ErrNotMember)
	assert.Empty(t, store.swipes, "a rejected swipe must write nothing")
}

func TestRecordSwipeValidation(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	svc := newSwipeService(store)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "", "alice", 500, model.DecisionLike)
	assert.ErrorIs(t, err, service.ErrEmptyIdentifier)

	_, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "", 500, model.DecisionLike)
	assert.ErrorIs(t, err, service.ErrEmptyIdentifier)

	_, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, "maybe")
	assert.ErrorIs(t, err, service.ErrInvalidDecision)
	assert.Empty(t, store.swipes)
}

func TestRecordSwipeMatchSequence(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	seedMember(store, "ab12cd34ef56gh78", "bob")
	seedMember(store, "ab12cd34ef56gh78", "carol")
	svc := newSwipeService(store)
	ctx := context.Background()

	matched, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.False(t, matched, "first like is below the threshold")

	matched, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "bob", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.True(t, matched, "second like crosses the threshold")

	matched, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "carol", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.True(t, matched, "the item stays matched for later likes")

	assert.Len(t, store.matches, 1, "the match row must not duplicate")
}

func TestRecordSwipeSkipNeverMatches(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	seedMember(store, "ab12cd34ef56gh78", "bob")
	svc := newSwipeService(store)
	ctx := context.Background()

	for _, user := range []string{"alice", "bob"} {
		matched, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", user, 500, model.DecisionSkip)
		require.NoError(t, err)
		assert.False(t, matched)
	}
	assert.Empty(t, store.matches)
}

func TestRecordSwipeLikeThenSkipOverwrites(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	svc := newSwipeService(store)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionLike)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionSkip)
	require.NoError(t, err)

	require.Len(t, store.swipes, 1, "a changed mind overwrites, never adds a row")
	sw := store.swipes[swipeKey("ab12cd34ef56gh78", "alice", 500)]
	assert.Equal(t, model.DecisionSkip, sw.Decision)
	assert.Empty(t, store.matches)
}

func TestRecordSwipeMatchIsPermanent(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	seedMember(store, "ab12cd34ef56gh78", "bob")
	svc := newSwipeService(store)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionLike)
	require.NoError(t, err)
	matched, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "bob", 500, model.DecisionLike)
	require.NoError(t, err)
	require.True(t, matched)

	// alice changes her mind; the like count drops below the threshold but
	// the recorded match must survive.
	_, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionSkip)
	require.NoError(t, err)
	assert.Len(t, store.matches, 1)

	// bob re-likes: the count is still 1, yet the item is matched.
	matched, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "bob", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.True(t, matched, "matched reports item state, not threshold state")
}

func TestRecordSwipeConfigurableThreshold(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	for _, user := range []string{"alice", "bob", "carol"} {
		seedMember(store, "ab12cd34ef56gh78", user)
	}
	cfg := testLobbyConfig()
	cfg.MatchThreshold = 3
	svc := service.NewSwipeService(store, cfg, zap.NewNop())
	ctx := context.Background()

	matched, err := svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "alice", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "bob", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.False(t, matched, "two likes stay below a threshold of three")

	matched, err = svc.RecordSwipe(ctx, "ab12cd34ef56gh78", "carol", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestRecordSwipeConcurrentLikes(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	seedMember(store, "ab12cd34ef56gh78", "bob")
	svc := newSwipeService(store)

	// Both likes cross the threshold together. If the count-then-insert
	// sequences interleave, each caller counts only its own like, neither
	// writes the match, and the loss is permanent. Many rounds on distinct
	// items give the scheduler room to interleave.
	for item := int64(1); item <= 50; item++ {
		results := make([]bool, 2)
		var wg sync.WaitGroup
		for i, user := range []string{"alice", "bob"} {
			wg.Add(1)
			go func(i int, user string) {
				defer wg.Done()
				matched, err := svc.RecordSwipe(context.Background(), "ab12cd34ef56gh78", user, item, model.DecisionLike)
				assert.NoError(t, err)
				results[i] = matched
			}(i, user)
		}
		wg.Wait()

		require.True(t, results[0] || results[1], "one of the two likes must observe the crossing")
		assert.Contains(t, store.matches, matchKey("ab12cd34ef56gh78", item))
	}
	assert.Len(t, store.matches, 50, "exactly one match row per item")
}

func TestRecordSwipeNormalizesLobbyID(t *testing.T) {
	store := newFakeStore()
	seedLobby(store, "ab12cd34ef56gh78", true)
	seedMember(store, "ab12cd34ef56gh78", "alice")
	svc := newSwipeService(store)

	_, err := svc.RecordSwipe(context.Background(), "AB12CD34EF56GH78", "alice", 500, model.DecisionLike)
	require.NoError(t, err)
	assert.Contains(t, store.swipes, swipeKey("ab12cd34ef56gh78", "alice", 500))
}
