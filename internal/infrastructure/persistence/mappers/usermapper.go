package mappers

import (
	"fmt"

	"streamdesk/internal/domain/user"
	"streamdesk/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:               u.ID(),
		TelegramID:       u.TelegramID(),
		TelegramUsername: u.TelegramUsername(),
		FirstName:        u.FirstName(),
		LastName:         u.LastName(),
		TotalSpent:       u.TotalSpent(),
		LastActive:       u.LastActive(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}

	for _, s := range u.Subscriptions() {
		model.Subscriptions = append(model.Subscriptions, models.SubscriptionModel{
			UserID:     u.ID(),
			PlanType:   s.PlanType(),
			ExpiryDate: s.ExpiryDate(),
			AmountPaid: s.AmountPaid(),
		})
	}

	return model
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	subs := make([]user.Subscription, 0, len(model.Subscriptions))
	for _, sm := range model.Subscriptions {
		s, err := user.NewSubscription(sm.PlanType, sm.ExpiryDate, sm.AmountPaid)
		if err != nil {
			return nil, fmt.Errorf("invalid subscription record for user %d: %w", model.TelegramID, err)
		}
		subs = append(subs, s)
	}

	return user.ReconstructUser(user.UserReconstructParams{
		ID:               model.ID,
		TelegramID:       model.TelegramID,
		TelegramUsername: model.TelegramUsername,
		FirstName:        model.FirstName,
		LastName:         model.LastName,
		TotalSpent:       model.TotalSpent,
		Subscriptions:    subs,
		CreatedAt:        model.CreatedAt,
		LastActive:       model.LastActive,
		UpdatedAt:        model.UpdatedAt,
	}), nil
}
