package models

import "time"

type BroadcastModel struct {
	ID          uint      `gorm:"primaryKey"`
	BroadcastID string    `gorm:"uniqueIndex;size:64;not null"`
	Message     string    `gorm:"type:text;not null"`
	Target      string    `gorm:"size:20;not null"`
	Recipients  Int64List `gorm:"type:json"`
	Status      string    `gorm:"size:20;not null;index"`
	SentCount   int
	FailedCount int
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BroadcastModel) TableName() string {
	return "broadcasts"
}
