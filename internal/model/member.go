package model

import "time"

// Member is one participant of a lobby. The composite primary key makes a
// repeated join by the same user an upsert, never a second row.
type Member struct {
	LobbyID  string    `gorm:"type:varchar(32);primaryKey" json:"lobby_id"`
	UserID   string    `gorm:"type:varchar(128);primaryKey" json:"user_id"`
	Nickname string    `gorm:"type:varchar(128)" json:"nickname,omitempty"`
	JoinedAt time.Time `gorm:"not null" json:"joined_at"`

	Lobby Lobby `gorm:"foreignKey:LobbyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Member) TableName() string { return "lobby_members" }
