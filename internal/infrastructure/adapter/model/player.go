package model

import "time"

// Player represents the database model for players
type Player struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Login          string    `gorm:"uniqueIndex;not null;size:255"`
	CredentialHash string    `gorm:"not null;size:255"`
	Balance        int64     `gorm:"not null"` // Balance in whole points
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Player
func (Player) TableName() string {
	return "players"
}
