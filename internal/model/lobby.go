package model

import "time"

// Lobby is a swipe session. Its primary key doubles as the human-shareable
// join code, so uniqueness of generated codes is enforced by the store.
type Lobby struct {
	ID        string    `gorm:"type:varchar(32);primaryKey" json:"lobby_id"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Lobby) TableName() string { return "lobbies" }
