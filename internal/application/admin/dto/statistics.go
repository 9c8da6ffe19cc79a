// Package dto defines the aggregate statistics shapes for the overview screen.
package dto

type PlanRevenue struct {
	PlanType string  `json:"plan_type"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

type PlatformUsage struct {
	Platform string `json:"platform"`
	Users    int64  `json:"users"`
}

// StatisticsResponse is the overview snapshot. It is recomputed on every
// uncached fetch and carries no identity of its own.
type StatisticsResponse struct {
	TotalUsers       int64           `json:"total_users"`
	NewUsersThisWeek int64           `json:"new_users_this_week"`
	ActiveUsers      int64           `json:"active_users"`
	TotalRevenue     float64         `json:"total_revenue"`
	PendingPayments  int64           `json:"pending_payments"`
	RevenueByPlan    []PlanRevenue   `json:"revenue_by_plan"`
	TopPlatforms     []PlatformUsage `json:"top_platforms"`
}
