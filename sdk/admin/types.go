// Package admin provides a Go client for the streamdesk admin API.
package admin

// Subscription is an active subscription attached to a user.
type Subscription struct {
	PlanType   string  `json:"plan_type"`
	ExpiryDate string  `json:"expiry_date"`
	AmountPaid float64 `json:"amount_paid"`
}

// User is a bot user as returned by the admin API.
type User struct {
	TelegramID          int64          `json:"telegram_id"`
	TelegramUsername    string         `json:"telegram_username"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	TotalSpent          float64        `json:"total_spent"`
	ActiveSubscriptions []Subscription `json:"active_subscriptions"`
	CreatedAt           string         `json:"created_at"`
	LastActive          string         `json:"last_active"`
}

// UserList is a page of users.
type UserList struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
	Limit int    `json:"limit"`
	Skip  int    `json:"skip"`
}

// Payment is a payment submission.
type Payment struct {
	PaymentID        string   `json:"payment_id"`
	TelegramID       int64    `json:"telegram_id"`
	Amount           float64  `json:"amount"`
	PlanType         string   `json:"plan_type"`
	Platforms        []string `json:"platforms"`
	UPIID            string   `json:"upi_id"`
	TransactionID    *string  `json:"transaction_id,omitempty"`
	ScreenshotURL    *string  `json:"screenshot_url,omitempty"`
	Status           string   `json:"status"`
	VerificationDate string   `json:"verification_date,omitempty"`
	RejectionReason  *string  `json:"rejection_reason,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// PaymentList is a page of payments.
type PaymentList struct {
	Payments []Payment `json:"payments"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Skip     int       `json:"skip"`
}

// UserDetail bundles a user with their full payment history.
type UserDetail struct {
	User     User      `json:"user"`
	Payments []Payment `json:"payments"`
}

// ActionResult acknowledges a payment review action.
type ActionResult struct {
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
}

// Statistics is the overview snapshot.
type Statistics struct {
	TotalUsers       int64           `json:"total_users"`
	NewUsersThisWeek int64           `json:"new_users_this_week"`
	ActiveUsers      int64           `json:"active_users"`
	TotalRevenue     float64         `json:"total_revenue"`
	PendingPayments  int64           `json:"pending_payments"`
	RevenueByPlan    []PlanRevenue   `json:"revenue_by_plan"`
	TopPlatforms     []PlatformUsage `json:"top_platforms"`
}

// PlanRevenue aggregates verified revenue per plan type.
type PlanRevenue struct {
	PlanType string  `json:"plan_type"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

// PlatformUsage counts distinct paying users per OTT platform.
type PlatformUsage struct {
	Platform string `json:"platform"`
	Users    int64  `json:"users"`
}

// BroadcastRequest queues a broadcast to a target audience.
type BroadcastRequest struct {
	Message string `json:"message"`
	Target  string `json:"target"`
}

// BroadcastReceipt acknowledges a queued broadcast.
type BroadcastReceipt struct {
	Message        string `json:"message"`
	BroadcastID    string `json:"broadcast_id"`
	RecipientCount int    `json:"recipient_count"`
}

// Broadcast is a historical broadcast entry.
type Broadcast struct {
	BroadcastID    string `json:"broadcast_id"`
	Message        string `json:"message"`
	Target         string `json:"target"`
	RecipientCount int    `json:"recipient_count"`
	Status         string `json:"status"`
	SentCount      int    `json:"sent_count"`
	FailedCount    int    `json:"failed_count"`
	CreatedAt      string `json:"created_at"`
	CompletedAt    string `json:"completed_at,omitempty"`
}

// BroadcastList is the broadcast history.
type BroadcastList struct {
	Broadcasts []Broadcast `json:"broadcasts"`
}

// ListUsersParams filters the user directory.
type ListUsersParams struct {
	Limit  int
	Skip   int
	Search string
	Status string
}

// ListPaymentsParams filters the payment queue.
type ListPaymentsParams struct {
	Limit  int
	Skip   int
	Status string
}
