package models

import "time"

type PaymentModel struct {
	ID               uint       `gorm:"primaryKey"`
	PaymentID        string     `gorm:"uniqueIndex;size:64;not null"`
	TelegramID       int64      `gorm:"index;not null"`
	Amount           float64    `gorm:"not null"`
	PlanType         string     `gorm:"size:32;not null"`
	Platforms        StringList `gorm:"type:json"`
	UPIID            string     `gorm:"size:128"`
	TransactionID    *string    `gorm:"size:128"`
	ScreenshotURL    *string    `gorm:"type:text"`
	Status           string     `gorm:"size:20;not null;index"`
	VerificationDate *time.Time
	RejectionReason  *string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
