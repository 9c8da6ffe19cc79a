package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"unicode/utf8"

	"streamdesk/internal/shared/errors"
	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

// BroadcastsController drives the composer and the read-only history view.
// History rows reflect backend-reported status only; the dashboard never
// transitions a broadcast itself.
type BroadcastsController struct {
	api      API
	prompter Prompter
	logger   logger.Interface

	mu         sync.Mutex
	message    string
	target     string
	broadcasts []admin.Broadcast
}

func NewBroadcastsController(api API, prompter Prompter, log logger.Interface) *BroadcastsController {
	return &BroadcastsController{
		api:      api,
		prompter: prompter,
		logger:   log,
		target:   "all",
	}
}

// SetMessage updates the compose field.
func (c *BroadcastsController) SetMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = message
}

// Message returns the current compose field content.
func (c *BroadcastsController) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// CharacterCount is the live length display for the compose field.
func (c *BroadcastsController) CharacterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return utf8.RuneCountInString(c.message)
}

// SetTarget selects the audience. Invalid values are rejected.
func (c *BroadcastsController) SetTarget(target string) error {
	switch target {
	case "all", "active", "expired":
	default:
		return errors.NewValidationError("Invalid broadcast target")
	}

	c.mu.Lock()
	c.target = target
	c.mu.Unlock()
	return nil
}

// Target returns the selected audience.
func (c *BroadcastsController) Target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Broadcasts returns the history, newest first.
func (c *BroadcastsController) Broadcasts() []admin.Broadcast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broadcasts
}

// Refresh fetches broadcast history.
func (c *BroadcastsController) Refresh(ctx context.Context) {
	list, err := c.api.ListBroadcasts(ctx, 0)
	if err != nil {
		c.logger.Errorw("failed to list broadcasts", "error", err)
		return
	}

	c.mu.Lock()
	c.broadcasts = list.Broadcasts
	c.mu.Unlock()
}

// Send queues the composed broadcast. The trimmed message must be non-empty
// and the operator must confirm the named target audience. On success the
// compose field is cleared and the history refetched; the returned receipt
// carries the backend-computed recipient count.
func (c *BroadcastsController) Send(ctx context.Context) (*admin.BroadcastReceipt, error) {
	c.mu.Lock()
	message := strings.TrimSpace(c.message)
	target := c.target
	c.mu.Unlock()

	if message == "" {
		return nil, errors.NewValidationError("Message cannot be empty")
	}

	if !c.prompter.Confirm(fmt.Sprintf("Send this broadcast to %s users?", target)) {
		return nil, nil
	}

	receipt, err := c.api.SendBroadcast(ctx, admin.BroadcastRequest{
		Message: message,
		Target:  target,
	})
	if err != nil {
		c.logger.Errorw("failed to send broadcast", "target", target, "error", err)
		return nil, err
	}

	c.mu.Lock()
	c.message = ""
	c.mu.Unlock()

	c.Refresh(ctx)
	return receipt, nil
}

// Render writes the composer state and history to w.
func (c *BroadcastsController) Render(w io.Writer) {
	c.mu.Lock()
	message := c.message
	target := c.target
	broadcasts := c.broadcasts
	c.mu.Unlock()

	fmt.Fprintf(w, "Compose (target=%s, %d chars): %s\n", target, utf8.RuneCountInString(message), message)

	fmt.Fprintln(w, "\nHistory:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTARGET\tRECIPIENTS\tSENT\tFAILED\tSTATUS\tCREATED")
	for _, b := range broadcasts {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			b.BroadcastID, b.Target, b.RecipientCount, b.SentCount, b.FailedCount,
			b.Status, b.CreatedAt)
	}
	tw.Flush()
}
