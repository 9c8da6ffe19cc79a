package usecases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"streamdesk/internal/application/admin/dto"
	"streamdesk/internal/domain/stats"
	"streamdesk/internal/infrastructure/cache"
	"streamdesk/internal/shared/biztime"
	apperrors "streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
)

const topPlatformsLimit = 10

// GetStatisticsUseCase assembles the overview snapshot. The individual
// aggregates are independent queries, so they fan out concurrently; a short
// Redis cache absorbs repeated dashboard loads.
type GetStatisticsUseCase struct {
	statsRepo  stats.StatsRepository
	statsCache *cache.StatsCache
	logger     logger.Interface
}

func NewGetStatisticsUseCase(
	statsRepo stats.StatsRepository,
	statsCache *cache.StatsCache,
	log logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		statsRepo:  statsRepo,
		statsCache: statsCache,
		logger:     log,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*dto.StatisticsResponse, error) {
	var cached dto.StatisticsResponse
	if err := uc.statsCache.Get(ctx, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		uc.logger.Warnw("stats cache read failed, falling back to database", "error", err)
	}

	snapshot, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.statsCache.Set(ctx, snapshot); err != nil {
		uc.logger.Warnw("failed to cache stats snapshot", "error", err)
	}

	return snapshot, nil
}

func (uc *GetStatisticsUseCase) compute(ctx context.Context) (*dto.StatisticsResponse, error) {
	weekAgo := biztime.WeekAgoUTC(biztime.NowUTC())

	var (
		totalUsers      int64
		newThisWeek     int64
		activeUsers     int64
		pendingPayments int64
		totalRevenue    float64
		revenueByPlan   []stats.PlanRevenue
		topPlatforms    []stats.PlatformUsage
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.statsRepo.CountUsers(gctx)
		if err != nil {
			return apperrors.NewInternalError("failed to count users")
		}
		totalUsers = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.statsRepo.CountNewUsersSince(gctx, weekAgo)
		if err != nil {
			return apperrors.NewInternalError("failed to count new users")
		}
		newThisWeek = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.statsRepo.CountActiveUsers(gctx)
		if err != nil {
			return apperrors.NewInternalError("failed to count active users")
		}
		activeUsers = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.statsRepo.CountPendingPayments(gctx)
		if err != nil {
			return apperrors.NewInternalError("failed to count pending payments")
		}
		pendingPayments = count
		return nil
	})

	g.Go(func() error {
		total, err := uc.statsRepo.TotalRevenue(gctx)
		if err != nil {
			return apperrors.NewInternalError("failed to sum revenue")
		}
		totalRevenue = total
		return nil
	})

	g.Go(func() error {
		rows, err := uc.statsRepo.RevenueByPlan(gctx)
		if err != nil {
			return apperrors.NewInternalError("failed to aggregate revenue by plan")
		}
		revenueByPlan = rows
		return nil
	})

	g.Go(func() error {
		rows, err := uc.statsRepo.TopPlatforms(gctx, topPlatformsLimit)
		if err != nil {
			return apperrors.NewInternalError("failed to aggregate platform usage")
		}
		topPlatforms = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	planRows := make([]dto.PlanRevenue, 0, len(revenueByPlan))
	for _, row := range revenueByPlan {
		planRows = append(planRows, dto.PlanRevenue{
			PlanType: row.PlanType,
			Count:    row.Count,
			Total:    row.Total,
		})
	}

	platformRows := make([]dto.PlatformUsage, 0, len(topPlatforms))
	for _, row := range topPlatforms {
		platformRows = append(platformRows, dto.PlatformUsage{
			Platform: row.Platform,
			Users:    row.Users,
		})
	}

	return &dto.StatisticsResponse{
		TotalUsers:       totalUsers,
		NewUsersThisWeek: newThisWeek,
		ActiveUsers:      activeUsers,
		TotalRevenue:     totalRevenue,
		PendingPayments:  pendingPayments,
		RevenueByPlan:    planRows,
		TopPlatforms:     platformRows,
	}, nil
}
