// Package dto defines broadcast-facing request and response shapes.
package dto

import (
	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/shared/biztime"
)

type SendBroadcastRequest struct {
	Message string `json:"message" binding:"required" validate:"required"`
	Target  string `json:"target" binding:"required,oneof=all active expired" validate:"required,oneof=all active expired"`
}

type SendBroadcastResponse struct {
	Message        string `json:"message"`
	BroadcastID    string `json:"broadcast_id"`
	RecipientCount int    `json:"recipient_count"`
}

type BroadcastResponse struct {
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

type BroadcastListResponse struct {
	Broadcasts []BroadcastResponse `json:"broadcasts"`
}

func NewBroadcastResponse(b *broadcast.Broadcast) BroadcastResponse {
	return BroadcastResponse{
		BroadcastID:    b.BroadcastID(),
		Message:        b.Message(),
		Target:         string(b.Target()),
		RecipientCount: b.RecipientCount(),
		Status:         string(b.Status()),
		SentCount:      b.SentCount(),
		FailedCount:    b.FailedCount(),
		CreatedAt:      biztime.FormatRFC3339(b.CreatedAt()),
		CompletedAt:    biztime.FormatRFC3339Ptr(b.CompletedAt()),
	}
}

func NewBroadcastListResponse(broadcasts []*broadcast.Broadcast) BroadcastListResponse {
	items := make([]BroadcastResponse, 0, len(broadcasts))
	for _, b := range broadcasts {
		items = append(items, NewBroadcastResponse(b))
	}

	return BroadcastListResponse{Broadcasts: items}
}
