package model

import "time"

// Match records that an item crossed the like threshold in a lobby.
// Write-once: the insert is a no-op if the pair already exists, so a match
// is never re-timestamped or removed by later swipes.
type Match struct {
	LobbyID   string    `gorm:"type:varchar(32);primaryKey" json:"lobby_id"`
	ItemID    int64     `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	MatchedAt time.Time `gorm:"not null" json:"matched_at"`

	Lobby Lobby `gorm:"foreignKey:LobbyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Match) TableName() string { return "lobby_matches" }
