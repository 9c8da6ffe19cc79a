package user

import (
	"fmt"
	"time"

	"streamdesk/internal/shared/biztime"
)

// User is a bot end user as seen by the admin dashboard. Users are created
// and kept active by the Telegram bot; the dashboard reads them, activates
// subscriptions through payment approval, and deletes them.
type User struct {
	id               uint
	telegramID       int64
	telegramUsername string
	firstName        string
	lastName         string
	totalSpent       float64
	subscriptions    []Subscription
	createdAt        time.Time
	lastActive       time.Time
	updatedAt        time.Time
}

func NewUser(telegramID int64, username, firstName, lastName string) (*User, error) {
	if telegramID == 0 {
		return nil, fmt.Errorf("telegram ID is required")
	}

	now := biztime.NowUTC()
	return &User{
		telegramID:       telegramID,
		telegramUsername: username,
		firstName:        firstName,
		lastName:         lastName,
		createdAt:        now,
		lastActive:       now,
		updatedAt:        now,
	}, nil
}

// UserReconstructParams carries persisted state back into a User.
type UserReconstructParams struct {
	ID               uint
	TelegramID       int64
	TelegramUsername string
	FirstName        string
	LastName         string
	TotalSpent       float64
	Subscriptions    []Subscription
	CreatedAt        time.Time
	LastActive       time.Time
	UpdatedAt        time.Time
}

func ReconstructUser(params UserReconstructParams) *User {
	return &User{
		id:               params.ID,
		telegramID:       params.TelegramID,
		telegramUsername: params.TelegramUsername,
		firstName:        params.FirstName,
		lastName:         params.LastName,
		totalSpent:       params.TotalSpent,
		subscriptions:    params.Subscriptions,
		createdAt:        params.CreatedAt,
		lastActive:       params.LastActive,
		updatedAt:        params.UpdatedAt,
	}
}

// ActivateSubscription appends a subscription and adds its amount to the
// user's lifetime spend. Called when a payment for this user is approved.
func (u *User) ActivateSubscription(sub Subscription) {
	u.subscriptions = append(u.subscriptions, sub)
	u.totalSpent += sub.AmountPaid()
	u.updatedAt = biztime.NowUTC()
}

// Touch records bot activity.
func (u *User) Touch() {
	u.lastActive = biztime.NowUTC()
	u.updatedAt = u.lastActive
}

// ActiveSubscriptions returns the subscriptions that have not yet expired.
func (u *User) ActiveSubscriptions() []Subscription {
	var active []Subscription
	for _, s := range u.subscriptions {
		if !s.IsExpired() {
			active = append(active, s)
		}
	}
	return active
}

// HasActiveSubscription reports whether at least one subscription is
// unexpired. This is the binary "active" classification the dashboard shows.
func (u *User) HasActiveSubscription() bool {
	for _, s := range u.subscriptions {
		if !s.IsExpired() {
			return true
		}
	}
	return false
}

// IsExpired reports whether the user had subscriptions but all have lapsed.
// Users who never subscribed are neither active nor expired.
func (u *User) IsExpired() bool {
	return len(u.subscriptions) > 0 && !u.HasActiveSubscription()
}

// SetID sets the user ID after persistence (used by repository after Create)
func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) TelegramID() int64 {
	return u.telegramID
}

func (u *User) TelegramUsername() string {
	return u.telegramUsername
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) TotalSpent() float64 {
	return u.totalSpent
}

// Subscriptions returns all subscription records, expired included.
func (u *User) Subscriptions() []Subscription {
	return u.subscriptions
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) LastActive() time.Time {
	return u.lastActive
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
