package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/config"
	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/repository"
	"movievibe/lobbyhub/pkg/lobbycode"
)

// CreatedLobby is what a lobby creator gets back: the code and the
// shareable join reference built from the configured base address.
type CreatedLobby struct {
	LobbyID string `json:"lobby_id"`
	Code    string `json:"code"`
	JoinURL string `json:"join_url"`
}

// MatchEntry is a match row optionally enriched with a catalog title.
type MatchEntry struct {
	ItemID    int64     `json:"item_id"`
	MatchedAt time.Time `json:"matched_at"`
	Title     string    `json:"title,omitempty"`
}

// LobbyInfo is the read-only projection polling clients consume.
type LobbyInfo struct {
	LobbyID   string         `json:"lobby_id"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	Members   []model.Member `json:"members"`
	Matches   []MatchEntry   `json:"matches"`
}

type LobbyService interface {
	CreateLobby(ctx context.Context, userID, nickname string) (*CreatedLobby, error)
	JoinLobby(ctx context.Context, code, userID, nickname string) (string, error)
	GetLobbyInfo(ctx context.Context, code string) (*LobbyInfo, error)
	// JoinURL builds the join reference for a code; the QR renderer
	// consumes this.
	JoinURL(code string) string
}

type lobbyService struct {
	store   repository.Store
	catalog CatalogService // optional, may be nil
	cfg     config.LobbyConfig
	logger  *zap.Logger
}

func NewLobbyService(store repository.Store, catalog CatalogService, cfg config.LobbyConfig, logger *zap.Logger) LobbyService {
	return &lobbyService{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *lobbyService) CreateLobby(ctx context.Context, userID, nickname string) (*CreatedLobby, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id: %w", ErrEmptyIdentifier)
	}

	retries := s.cfg.CreateRetries
	if retries <= 0 {
		retries = 1
	}

	// The code's uniqueness is enforced by the lobbies primary key; a
	// collision is an expected-rare retry, invisible to the caller.
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		code, err := lobbycode.Generate(s.cfg.CodeLength)
		if err != nil {
			return nil, storeErr("generate code", err)
		}

		now := time.Now()
		err = s.withTimeout(ctx, func(ctx context.Context) error {
			return s.store.Transaction(ctx, func(tx repository.Store) error {
				if err := tx.Lobbies().Create(ctx, &model.Lobby{
					ID:        code,
					Active:    true,
					CreatedAt: now,
				}); err != nil {
					return err
				}
				return tx.Members().Upsert(ctx, &model.Member{
					LobbyID:  code,
					UserID:   userID,
					Nickname: nickname,
					JoinedAt: now,
				})
			})
		})
		if err == nil {
			return &CreatedLobby{
				LobbyID: code,
				Code:    code,
				JoinURL: s.JoinURL(code),
			}, nil
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Warn("lobby code collision, regenerating",
				zap.Int("attempt", attempt+1))
			lastErr = err
			continue
		}
		return nil, storeErr("create lobby", err)
	}
	return nil, storeErr("create lobby", lastErr)
}

func (s *lobbyService) JoinLobby(ctx context.Context, code, userID, nickname string) (string, error) {
	code = normalizeCode(code)
	if code == "" {
		return "", fmt.Errorf("code: %w", ErrEmptyIdentifier)
	}
	if userID == "" {
		return "", fmt.Errorf("user_id: %w", ErrEmptyIdentifier)
	}

	err := s.withTimeout(ctx, func(ctx context.Context) error {
		lobby, err := s.store.Lobbies().GetByID(ctx, code)
		if err != nil {
			return err
		}
		if lobby == nil {
			return ErrLobbyNotFound
		}
		if !lobby.Active {
			return ErrLobbyInactive
		}

		return s.store.Members().Upsert(ctx, &model.Member{
			LobbyID:  code,
			UserID:   userID,
			Nickname: nickname,
			JoinedAt: time.Now(),
		})
	})
	if err != nil {
		return "", storeErr("join lobby", err)
	}
	return code, nil
}

func (s *lobbyService) GetLobbyInfo(ctx context.Context, code string) (*LobbyInfo, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("code: %w", ErrEmptyIdentifier)
	}

	var info *LobbyInfo
	err := s.withTimeout(ctx, func(ctx context.Context) error {
		lobby, err := s.store.Lobbies().GetByID(ctx, code)
		if err != nil {
			return err
		}
		if lobby == nil {
			return ErrLobbyNotFound
		}

		members, err := s.store.Members().ListByLobby(ctx, code)
		if err != nil {
			return err
		}
		matches, err := s.store.Matches().ListRecentByLobby(ctx, code, s.cfg.RecentMatchLimit)
		if err != nil {
			return err
		}
		if members == nil {
			members = []model.Member{}
		}

		info = &LobbyInfo{
			LobbyID:   lobby.ID,
			Active:    lobby.Active,
			CreatedAt: lobby.CreatedAt,
			Members:   members,
			Matches:   s.matchEntries(ctx, matches),
		}
		return nil
	})
	if err != nil {
		return nil, storeErr("get lobby info", err)
	}
	return info, nil
}

func (s *lobbyService) JoinURL(code string) string {
	base := strings.TrimRight(s.cfg.JoinBaseURL, "/")
	return fmt.Sprintf("%s/lobby/%s/join", base, normalizeCode(code))
}

// matchEntries enriches match rows with catalog titles when a catalog
// service is wired. A lookup failure never fails the info call.
func (s *lobbyService) matchEntries(ctx context.Context, matches []model.Match) []MatchEntry {
	entries := make([]MatchEntry, 0, len(matches))
	for _, m := range matches {
		entry := MatchEntry{ItemID: m.ItemID, MatchedAt: m.MatchedAt}
		if s.catalog != nil {
			title, err := s.catalog.ItemTitle(ctx, m.ItemID)
			if err != nil {
				s.logger.Debug("catalog title lookup failed",
					zap.Int64("item_id", m.ItemID), zap.Error(err))
			} else {
				entry.Title = title
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *lobbyService) withTimeout(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()
	return fn(ctx)
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

var _ LobbyService = (*lobbyService)(nil)
