// Package dto defines user-facing response shapes for the admin API.
package dto

import (
	"streamdesk/internal/domain/user"
	"streamdesk/internal/shared/biztime"
)

type SubscriptionResponse struct {
	PlanType   string  `json:"plan_type"`
	ExpiryDate string  `json:"expiry_date"`
	AmountPaid float64 `json:"amount_paid"`
}

type UserResponse struct {
	TelegramID          int64                  `json:"telegram_id"`
	TelegramUsername    string                 `json:"telegram_username"`
	FirstName           string                 `json:"first_name"`
	LastName            string                 `json:"last_name"`
	TotalSpent          float64                `json:"total_spent"`
	ActiveSubscriptions []SubscriptionResponse `json:"active_subscriptions"`
	CreatedAt           string                 `json:"created_at"`
	LastActive          string                 `json:"last_active"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Limit int            `json:"limit"`
	Skip  int            `json:"skip"`
}

func NewUserResponse(u *user.User) UserResponse {
	// The dashboard's "active" classification keys off this list being
	// non-empty, so expired entries are excluded here.
	subs := make([]SubscriptionResponse, 0)
	for _, s := range u.ActiveSubscriptions() {
		subs = append(subs, SubscriptionResponse{
			PlanType:   s.PlanType(),
			ExpiryDate: biztime.FormatRFC3339(s.ExpiryDate()),
			AmountPaid: s.AmountPaid(),
		})
	}

	return UserResponse{
		TelegramID:          u.TelegramID(),
		TelegramUsername:    u.TelegramUsername(),
		FirstName:           u.FirstName(),
		LastName:            u.LastName(),
		TotalSpent:          u.TotalSpent(),
		ActiveSubscriptions: subs,
		CreatedAt:           biztime.FormatRFC3339(u.CreatedAt()),
		LastActive:          biztime.FormatRFC3339(u.LastActive()),
	}
}

func NewUserListResponse(users []*user.User, total int64, limit, skip int) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, NewUserResponse(u))
	}

	return UserListResponse{
		Users: items,
		Total: total,
		Limit: limit,
		Skip:  skip,
	}
}
