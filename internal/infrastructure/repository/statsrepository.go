package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"streamdesk/internal/domain/payment"
	"streamdesk/internal/domain/stats"
	"streamdesk/internal/infrastructure/persistence/models"
	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/db"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) CountNewUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where(
			"EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.user_id = users.id AND subscriptions.expiry_date > ?)",
			biztime.NowUTC(),
		).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) CountPendingPayments(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("status = ?", string(payment.StatusPending)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending payments: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("status = ?", string(payment.StatusVerified)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) RevenueByPlan(ctx context.Context) ([]stats.PlanRevenue, error) {
	var rows []stats.PlanRevenue
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("status = ?", string(payment.StatusVerified)).
		Select("plan_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("plan_type").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by plan: %w", err)
	}
	return rows, nil
}

// TopPlatforms counts distinct users per platform over verified payments.
// Platforms live in a JSON column, so the per-platform fan-out happens here
// rather than in SQL to stay portable across mysql and sqlite.
func (r *StatsRepository) TopPlatforms(ctx context.Context, limit int) ([]stats.PlatformUsage, error) {
	var rows []struct {
		TelegramID int64
		Platforms  models.StringList
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("status = ?", string(payment.StatusVerified)).
		Select("telegram_id, platforms").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load platform selections: %w", err)
	}

	usersByPlatform := make(map[string]map[int64]struct{})
	for _, row := range rows {
		for _, platform := range row.Platforms {
			if usersByPlatform[platform] == nil {
				usersByPlatform[platform] = make(map[int64]struct{})
			}
			usersByPlatform[platform][row.TelegramID] = struct{}{}
		}
	}

	usage := make([]stats.PlatformUsage, 0, len(usersByPlatform))
	for platform, users := range usersByPlatform {
		usage = append(usage, stats.PlatformUsage{
			Platform: platform,
			Users:    int64(len(users)),
		})
	}

	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Users != usage[j].Users {
			return usage[i].Users > usage[j].Users
		}
		return usage[i].Platform < usage[j].Platform
	})

	if limit > 0 && len(usage) > limit {
		usage = usage[:limit]
	}

	return usage, nil
}
