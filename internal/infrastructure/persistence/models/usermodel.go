package models

import "time"

type UserModel struct {
	ID               uint   `gorm:"primaryKey"`
	TelegramID       int64  `gorm:"uniqueIndex;not null"`
	TelegramUsername string `gorm:"size:64;index"`
	FirstName        string `gorm:"size:128"`
	LastName         string `gorm:"size:128"`
	TotalSpent       float64
	Subscriptions    []SubscriptionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LastActive       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type SubscriptionModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	PlanType   string `gorm:"size:32;not null"`
	ExpiryDate time.Time `gorm:"index;not null"`
	AmountPaid float64
	CreatedAt  time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
