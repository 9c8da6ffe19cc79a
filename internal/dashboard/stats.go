package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

const shareBarWidth = 20

// StatsController drives the overview screen: four summary tiles plus the
// revenue-by-plan and top-platforms breakdowns.
type StatsController struct {
	api    API
	logger logger.Interface

	mu       sync.Mutex
	loading  bool
	lastErr  error
	snapshot *admin.Statistics
}

func NewStatsController(api API, log logger.Interface) *StatsController {
	return &StatsController{api: api, logger: log}
}

// Refresh fetches a fresh snapshot. Fetch failures are logged and kept as an
// error state; the previous snapshot, if any, stays rendered.
func (c *StatsController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	snapshot, err := c.api.GetStatistics(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Errorw("failed to fetch statistics", "error", err)
		c.lastErr = err
		return
	}
	c.lastErr = nil
	c.snapshot = snapshot
}

func (c *StatsController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error from the most recent failed refresh, if any.
func (c *StatsController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *StatsController) Snapshot() *admin.Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// PlatformShare returns the fraction of active users on the given platform.
// A zero active-user count yields zero rather than NaN.
func PlatformShare(platformUsers, activeUsers int64) float64 {
	if activeUsers <= 0 {
		return 0
	}
	share := float64(platformUsers) / float64(activeUsers)
	if share > 1 {
		share = 1
	}
	return share
}

// Render writes the overview screen to w.
func (c *StatsController) Render(w io.Writer) {
	c.mu.Lock()
	snapshot := c.snapshot
	loading := c.loading
	lastErr := c.lastErr
	c.mu.Unlock()

	if lastErr != nil {
		fmt.Fprintf(w, "could not fetch statistics: %s\n", lastErr)
		if snapshot != nil {
			fmt.Fprintln(w, "showing the last loaded snapshot:")
		}
	}
	if snapshot == nil {
		if loading {
			fmt.Fprintln(w, "loading statistics...")
		} else if lastErr == nil {
			fmt.Fprintln(w, "no statistics loaded, run 'stats' to fetch")
		}
		return
	}

	fmt.Fprintf(w, "Users: %d (%d new this week)\n", snapshot.TotalUsers, snapshot.NewUsersThisWeek)
	fmt.Fprintf(w, "Active subscriptions: %d\n", snapshot.ActiveUsers)
	fmt.Fprintf(w, "Total revenue: %.2f\n", snapshot.TotalRevenue)
	fmt.Fprintf(w, "Pending payments: %d\n", snapshot.PendingPayments)

	if len(snapshot.RevenueByPlan) > 0 {
		fmt.Fprintln(w, "\nRevenue by plan:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, plan := range snapshot.RevenueByPlan {
			fmt.Fprintf(tw, "  %s\t%d payments\t%.2f\n", plan.PlanType, plan.Count, plan.Total)
		}
		tw.Flush()
	}

	if len(snapshot.TopPlatforms) > 0 {
		fmt.Fprintln(w, "\nTop platforms:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, platform := range snapshot.TopPlatforms {
			share := PlatformShare(platform.Users, snapshot.ActiveUsers)
			fmt.Fprintf(tw, "  %s\t%d\t%s\n", platform.Platform, platform.Users, shareBar(share))
		}
		tw.Flush()
	}
}

func shareBar(share float64) string {
	filled := int(share * shareBarWidth)
	return strings.Repeat("#", filled) + strings.Repeat("-", shareBarWidth-filled)
}
