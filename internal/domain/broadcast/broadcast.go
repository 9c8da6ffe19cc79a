package broadcast

import (
	"fmt"
	"strings"
	"time"

	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/id"
)

type Target string

const (
	TargetAll     Target = "all"
	TargetActive  Target = "active"
	TargetExpired Target = "expired"
)

func (t Target) Valid() bool {
	switch t {
	case TargetAll, TargetActive, TargetExpired:
		return true
	}
	return false
}

type Status string

const (
	StatusQueued  Status = "queued"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Broadcast is a one-to-many announcement queued for delivery by the
// worker. The recipient list is frozen at creation: users who join or lapse
// after the operator hits send are not affected.
type Broadcast struct {
	id          uint
	broadcastID string
	message     string
	target      Target
	recipients  []int64
	status      Status
	sentCount   int
	failedCount int
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
}

func NewBroadcast(message string, target Target, recipients []int64) (*Broadcast, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if !target.Valid() {
		return nil, fmt.Errorf("invalid target %q", target)
	}

	now := biztime.NowUTC()
	return &Broadcast{
		broadcastID: id.MustGenerateWithPrefix(id.PrefixBroadcast, id.DefaultLength),
		message:     message,
		target:      target,
		recipients:  recipients,
		status:      StatusQueued,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// BroadcastReconstructParams carries persisted state back into a Broadcast.
type BroadcastReconstructParams struct {
	ID          uint
	BroadcastID string
	Message     string
	Target      Target
	Recipients  []int64
	Status      Status
	SentCount   int
	FailedCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

func ReconstructBroadcast(params BroadcastReconstructParams) *Broadcast {
	return &Broadcast{
		id:          params.ID,
		broadcastID: params.BroadcastID,
		message:     params.Message,
		target:      params.Target,
		recipients:  params.Recipients,
		status:      params.Status,
		sentCount:   params.SentCount,
		failedCount: params.FailedCount,
		createdAt:   params.CreatedAt,
		updatedAt:   params.UpdatedAt,
		completedAt: params.CompletedAt,
	}
}

// MarkSending transitions queued→sending when the worker claims the job.
func (b *Broadcast) MarkSending() error {
	if b.status != StatusQueued {
		return fmt.Errorf("cannot start sending broadcast with status %s", b.status)
	}
	b.status = StatusSending
	b.updatedAt = biztime.NowUTC()
	return nil
}

// MarkSent records the delivery outcome. A broadcast that reached nobody
// (all sends failed) is marked failed instead.
func (b *Broadcast) MarkSent(sentCount, failedCount int) error {
	if b.status != StatusSending {
		return fmt.Errorf("cannot complete broadcast with status %s", b.status)
	}

	now := biztime.NowUTC()
	b.sentCount = sentCount
	b.failedCount = failedCount
	if sentCount == 0 && failedCount > 0 {
		b.status = StatusFailed
	} else {
		b.status = StatusSent
	}
	b.completedAt = &now
	b.updatedAt = now

	return nil
}

// MarkFailed transitions a claimed broadcast to failed without counts,
// for delivery aborted before any message went out.
func (b *Broadcast) MarkFailed() error {
	if b.status != StatusSending {
		return fmt.Errorf("cannot fail broadcast with status %s", b.status)
	}

	now := biztime.NowUTC()
	b.status = StatusFailed
	b.completedAt = &now
	b.updatedAt = now

	return nil
}

// SetID sets the broadcast ID after persistence (used by repository after Create)
func (b *Broadcast) SetID(id uint) {
	b.id = id
}

func (b *Broadcast) ID() uint {
	return b.id
}

func (b *Broadcast) BroadcastID() string {
	return b.broadcastID
}

func (b *Broadcast) Message() string {
	return b.message
}

func (b *Broadcast) Target() Target {
	return b.target
}

func (b *Broadcast) Recipients() []int64 {
	return b.recipients
}

func (b *Broadcast) RecipientCount() int {
	return len(b.recipients)
}

func (b *Broadcast) Status() Status {
	return b.status
}

func (b *Broadcast) SentCount() int {
	return b.sentCount
}

func (b *Broadcast) FailedCount() int {
	return b.failedCount
}

func (b *Broadcast) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Broadcast) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Broadcast) CompletedAt() *time.Time {
	return b.completedAt
}
