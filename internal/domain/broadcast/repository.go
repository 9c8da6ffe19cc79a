package broadcast

import "context"

type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *Broadcast) error
	Update(ctx context.Context, broadcast *Broadcast) error
	GetByBroadcastID(ctx context.Context, broadcastID string) (*Broadcast, error)
	List(ctx context.Context, limit int) ([]*Broadcast, error)

	// NextQueued returns the oldest queued broadcast, or nil when the
	// queue is empty. The worker polls this on its dispatch interval.
	NextQueued(ctx context.Context) (*Broadcast, error)
}
