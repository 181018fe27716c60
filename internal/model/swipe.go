package model

import "time"

type Decision string

const (
	DecisionLike Decision = "like"
	DecisionSkip Decision = "skip"
)

// Valid reports whether d is one of the accepted decision literals.
func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionSkip
}

// Swipe is a member's latest decision on a catalog item. The composite
// primary key gives a single row per (lobby, user, item); a later swipe
// overwrites the earlier decision.
type Swipe struct {
	LobbyID  string    `gorm:"type:varchar(32);primaryKey" json:"lobby_id"`
	UserID   string    `gorm:"type:varchar(128);primaryKey" json:"user_id"`
	ItemID   int64     `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Decision Decision  `gorm:"type:varchar(8);not null" json:"decision"`
	SwipedAt time.Time `gorm:"not null" json:"swiped_at"`

	Lobby Lobby `gorm:"foreignKey:LobbyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Swipe) TableName() string { return "lobby_swipes" }
