package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/infrastructure/persistence/mappers"
	"streamdesk/internal/infrastructure/persistence/models"
	"streamdesk/internal/shared/db"
)

type BroadcastRepository struct {
	db *gorm.DB
}

func NewBroadcastRepository(db *gorm.DB) *BroadcastRepository {
	return &BroadcastRepository{db: db}
}

func (r *BroadcastRepository) Create(ctx context.Context, b *broadcast.Broadcast) error {
	model := mappers.BroadcastToModel(b)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create broadcast: %w", err)
	}

	b.SetID(model.ID)

	return nil
}

func (r *BroadcastRepository) Update(ctx context.Context, b *broadcast.Broadcast) error {
	model := mappers.BroadcastToModel(b)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BroadcastModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"sent_count":   model.SentCount,
			"failed_count": model.FailedCount,
			"completed_at": model.CompletedAt,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update broadcast: %w", result.Error)
	}

	return nil
}

func (r *BroadcastRepository) GetByBroadcastID(ctx context.Context, broadcastID string) (*broadcast.Broadcast, error) {
	var model models.BroadcastModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("broadcast_id = ?", broadcastID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("broadcast not found")
		}
		return nil, fmt.Errorf("failed to get broadcast: %w", err)
	}

	return mappers.BroadcastToDomain(&model)
}

func (r *BroadcastRepository) List(ctx context.Context, limit int) ([]*broadcast.Broadcast, error) {
	var broadcastModels []models.BroadcastModel

	query := db.GetTxFromContext(ctx, r.db).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list broadcasts: %w", err)
	}

	broadcasts := make([]*broadcast.Broadcast, 0, len(broadcastModels))
	for i := range broadcastModels {
		b, err := mappers.BroadcastToDomain(&broadcastModels[i])
		if err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, b)
	}

	return broadcasts, nil
}

func (r *BroadcastRepository) NextQueued(ctx context.Context) (*broadcast.Broadcast, error) {
	var model models.BroadcastModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", string(broadcast.StatusQueued)).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queued broadcast: %w", err)
	}

	return mappers.BroadcastToDomain(&model)
}
