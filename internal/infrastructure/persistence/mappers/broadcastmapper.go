package mappers

import (
	"fmt"

	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/infrastructure/persistence/models"
)

func BroadcastToModel(b *broadcast.Broadcast) *models.BroadcastModel {
	return &models.BroadcastModel{
		ID:          b.ID(),
		BroadcastID: b.BroadcastID(),
		Message:     b.Message(),
		Target:      string(b.Target()),
		Recipients:  models.Int64List(b.Recipients()),
		Status:      string(b.Status()),
		SentCount:   b.SentCount(),
		FailedCount: b.FailedCount(),
		CompletedAt: b.CompletedAt(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func BroadcastToDomain(model *models.BroadcastModel) (*broadcast.Broadcast, error) {
	target := broadcast.Target(model.Target)
	if !target.Valid() {
		return nil, fmt.Errorf("invalid broadcast target: %s", model.Target)
	}

	status := broadcast.Status(model.Status)
	switch status {
	case broadcast.StatusQueued, broadcast.StatusSending, broadcast.StatusSent, broadcast.StatusFailed:
	default:
		return nil, fmt.Errorf("invalid broadcast status: %s", model.Status)
	}

	return broadcast.ReconstructBroadcast(broadcast.BroadcastReconstructParams{
		ID:          model.ID,
		BroadcastID: model.BroadcastID,
		Message:     model.Message,
		Target:      target,
		Recipients:  model.Recipients,
		Status:      status,
		SentCount:   model.SentCount,
		FailedCount: model.FailedCount,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		CompletedAt: model.CompletedAt,
	}), nil
}
