// Package stats defines the read-only aggregate queries behind the
// dashboard's overview screen. Nothing here has identity or lifecycle;
// every value is recomputed from the live tables on each call.
package stats

import (
	"context"
	"time"
)

// PlanRevenue is one row of the revenue-by-plan breakdown, computed over
// verified payments only.
type PlanRevenue struct {
	PlanType string
	Count    int64
	Total    float64
}

// PlatformUsage counts how many users with an active subscription selected
// a given platform in a verified payment.
type PlatformUsage struct {
	Platform string
	Users    int64
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountNewUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	CountPendingPayments(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByPlan(ctx context.Context) ([]PlanRevenue, error)
	TopPlatforms(ctx context.Context, limit int) ([]PlatformUsage, error)
}
