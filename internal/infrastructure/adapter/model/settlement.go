package model

import "time"

// Settlement represents the database model for settled wagers. Records are
// append-only: rows are only ever inserted inside the settlement commit.
type Settlement struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	PlayerID     uint64    `gorm:"not null;index"`
	ChosenNumber int       `gorm:"not null"`
	DrawnNumber  int       `gorm:"not null"`
	Stake        int64     `gorm:"not null"`
	Delta        int64     `gorm:"not null"`
	Result       string    `gorm:"not null;size:20"`
	CreatedAt    time.Time `gorm:"not null;index"`

	// Explicit foreign key; history is queried by player_id, never
	// navigated as a live object graph
	Player Player `gorm:"foreignKey:PlayerID;references:ID"`
}

// TableName specifies the table name for Settlement
func (Settlement) TableName() string {
	return "settlements"
}
