package repository

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"streamdesk/internal/domain/user"
	"streamdesk/internal/infrastructure/persistence/mappers"
	"streamdesk/internal/infrastructure/persistence/models"
	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)

	return nil
}

// Update persists user fields and replaces the subscription list wholesale.
// Subscriptions carry no identity of their own, so diffing is not worth it.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"telegram_username": model.TelegramUsername,
			"first_name":        model.FirstName,
			"last_name":         model.LastName,
			"total_spent":       model.TotalSpent,
			"last_active":       model.LastActive,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	if err := tx.Where("user_id = ?", model.ID).
		Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear subscriptions: %w", err)
	}

	for i := range model.Subscriptions {
		model.Subscriptions[i].ID = 0
		model.Subscriptions[i].UserID = model.ID
	}
	if len(model.Subscriptions) > 0 {
		if err := tx.Create(&model.Subscriptions).Error; err != nil {
			return fmt.Errorf("failed to save subscriptions: %w", err)
		}
	}

	return nil
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Preload("Subscriptions").
		Where("telegram_id = ?", telegramID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return mappers.UserToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})
	query = applySearch(query, filter.Search)
	query = applyStatus(query, filter.Status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []models.UserModel
	if err := query.
		Preload("Subscriptions").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := mappers.UserToDomain(&userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (r *UserRepository) Delete(ctx context.Context, telegramID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.Where("telegram_id = ?", telegramID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("user not found")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := tx.Where("user_id = ?", model.ID).
		Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}

	if err := tx.Delete(&models.UserModel{}, model.ID).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *UserRepository) ListTelegramIDsByStatus(ctx context.Context, status string) ([]int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})
	query = applyStatus(query, status)

	var ids []int64
	if err := query.Pluck("telegram_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list telegram ids: %w", err)
	}

	return ids, nil
}

// applySearch matches username or first name as a substring, or the exact
// telegram ID when the term is numeric.
func applySearch(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}

	if telegramID, err := strconv.ParseInt(search, 10, 64); err == nil {
		return query.Where(
			"telegram_username LIKE ? OR first_name LIKE ? OR telegram_id = ?",
			"%"+search+"%", "%"+search+"%", telegramID,
		)
	}

	return query.Where(
		"telegram_username LIKE ? OR first_name LIKE ?",
		"%"+search+"%", "%"+search+"%",
	)
}

// applyStatus narrows users to active (at least one unexpired subscription)
// or expired (subscribed before, nothing unexpired left).
func applyStatus(query *gorm.DB, status string) *gorm.DB {
	now := biztime.NowUTC()

	switch status {
	case user.StatusActive:
		return query.Where(
			"EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.user_id = users.id AND subscriptions.expiry_date > ?)",
			now,
		)
	case user.StatusExpired:
		return query.Where(
			"EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.user_id = users.id)",
		).Where(
			"NOT EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.user_id = users.id AND subscriptions.expiry_date > ?)",
			now,
		)
	default:
		return query
	}
}
