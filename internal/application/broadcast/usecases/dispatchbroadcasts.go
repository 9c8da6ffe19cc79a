package usecases

import (
	"context"
	"time"

	"streamdesk/internal/domain/broadcast"
	"streamdesk/internal/shared/logger"
)

// MessageSender delivers a single message to a Telegram chat.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// DispatchBroadcastsUseCase drains the broadcast queue. Each Execute claims
// the oldest queued broadcast, walks its frozen recipient list with a pacing
// delay between sends, and records the outcome. It satisfies the worker
// scheduler's BatchJob contract.
type DispatchBroadcastsUseCase struct {
	broadcastRepo broadcast.BroadcastRepository
	sender        MessageSender
	sendInterval  time.Duration
	logger        logger.Interface
}

func NewDispatchBroadcastsUseCase(
	broadcastRepo broadcast.BroadcastRepository,
	sender MessageSender,
	sendInterval time.Duration,
	log logger.Interface,
) *DispatchBroadcastsUseCase {
	return &DispatchBroadcastsUseCase{
		broadcastRepo: broadcastRepo,
		sender:        sender,
		sendInterval:  sendInterval,
		logger:        log,
	}
}

// Execute processes queued broadcasts until the queue is empty or the
// context is cancelled. Returns the number of messages sent.
func (uc *DispatchBroadcastsUseCase) Execute(ctx context.Context) (int, error) {
	totalSent := 0

	for {
		b, err := uc.broadcastRepo.NextQueued(ctx)
		if err != nil {
			return totalSent, err
		}
		if b == nil {
			return totalSent, nil
		}

		sent, err := uc.deliver(ctx, b)
		totalSent += sent
		if err != nil {
			return totalSent, err
		}
	}
}

func (uc *DispatchBroadcastsUseCase) deliver(ctx context.Context, b *broadcast.Broadcast) (int, error) {
	if err := b.MarkSending(); err != nil {
		return 0, err
	}
	if err := uc.broadcastRepo.Update(ctx, b); err != nil {
		return 0, err
	}

	uc.logger.Infow("delivering broadcast",
		"broadcast_id", b.BroadcastID(),
		"target", b.Target(),
		"recipient_count", b.RecipientCount())

	sent, failed, attempted := 0, 0, 0
	for _, chatID := range b.Recipients() {
		if ctx.Err() != nil {
			break
		}
		attempted++

		if err := uc.sender.SendMessage(ctx, chatID, b.Message()); err != nil {
			// Blocked bots and deleted accounts are routine; keep going.
			uc.logger.Debugw("broadcast delivery failed for recipient",
				"broadcast_id", b.BroadcastID(),
				"chat_id", chatID,
				"error", err)
			failed++
		} else {
			sent++
		}

		if uc.sendInterval > 0 {
			select {
			case <-time.After(uc.sendInterval):
			case <-ctx.Done():
			}
		}
	}

	// Recipients never attempted before cancellation count as failed; the
	// broadcast is terminal and the counts must cover everyone.
	if unattempted := b.RecipientCount() - attempted; unattempted > 0 {
		uc.logger.Warnw("broadcast delivery interrupted",
			"broadcast_id", b.BroadcastID(),
			"attempted", attempted,
			"unattempted", unattempted)
		failed += unattempted
	}

	if err := b.MarkSent(sent, failed); err != nil {
		return sent, err
	}
	if err := uc.broadcastRepo.Update(ctx, b); err != nil {
		return sent, err
	}

	uc.logger.Infow("broadcast delivered",
		"broadcast_id", b.BroadcastID(),
		"sent", sent,
		"failed", failed,
		"status", b.Status())

	return sent, nil
}
