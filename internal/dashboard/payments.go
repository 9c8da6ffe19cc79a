package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

// PaymentsController drives the review queue. Only one approve or reject
// call may be in flight at a time; while one is pending further actions are
// ignored rather than queued. Filter changes drop the selection, since the
// selected payment may not exist in the new result set.
type PaymentsController struct {
	api      API
	prompter Prompter
	logger   logger.Interface
	pageSize int

	mu         sync.Mutex
	seq        uint64
	status     string
	skip       int
	payments   []admin.Payment
	total      int64
	selectedID string
	processing bool
}

func NewPaymentsController(api API, prompter Prompter, log logger.Interface) *PaymentsController {
	return &PaymentsController{
		api:      api,
		prompter: prompter,
		logger:   log,
		pageSize: defaultPageSize,
		status:   "pending",
	}
}

// SetStatusFilter switches the queue filter, clears the selection and
// refetches.
func (c *PaymentsController) SetStatusFilter(ctx context.Context, status string) {
	c.mu.Lock()
	c.status = status
	c.skip = 0
	c.selectedID = ""
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh fetches the payment list for the current filter. Stale responses,
// issued before a newer fetch, are discarded.
func (c *PaymentsController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	params := admin.ListPaymentsParams{
		Limit:  c.pageSize,
		Skip:   c.skip,
		Status: c.status,
	}
	c.mu.Unlock()

	list, err := c.api.ListPayments(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	if err != nil {
		c.logger.Errorw("failed to list payments", "error", err)
		return
	}
	c.payments = list.Payments
	c.total = list.Total
}

// Select marks a payment for review. The payment must be on the current page.
func (c *PaymentsController) Select(paymentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.payments {
		if p.PaymentID == paymentID {
			c.selectedID = paymentID
			return true
		}
	}
	return false
}

// ClearSelection drops the current selection.
func (c *PaymentsController) ClearSelection() {
	c.mu.Lock()
	c.selectedID = ""
	c.mu.Unlock()
}

// SelectedID returns the selected payment id, or empty.
func (c *PaymentsController) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// Payments returns the current page.
func (c *PaymentsController) Payments() []admin.Payment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payments
}

// Total returns the backend-reported total for the current filter.
func (c *PaymentsController) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Processing reports whether an approve/reject call is in flight.
func (c *PaymentsController) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// Approve verifies the selected payment after confirmation. Afterwards the
// list is refetched and the selection cleared whether the call succeeded or
// not.
func (c *PaymentsController) Approve(ctx context.Context) error {
	paymentID, ok := c.beginAction()
	if !ok {
		return nil
	}

	if !c.prompter.Confirm(fmt.Sprintf("Approve payment %s?", paymentID)) {
		c.endAction()
		return nil
	}

	_, err := c.api.ApprovePayment(ctx, paymentID)
	if err != nil {
		c.logger.Errorw("failed to approve payment", "payment_id", paymentID, "error", err)
	}
	c.endAction()

	c.ClearSelection()
	c.Refresh(ctx)
	return err
}

// Reject rejects the selected payment with an operator-provided reason. A
// cancelled or empty reason abandons the workflow with zero network calls.
func (c *PaymentsController) Reject(ctx context.Context) error {
	paymentID, ok := c.beginAction()
	if !ok {
		return nil
	}

	reason, ok := c.prompter.Prompt(fmt.Sprintf("Reason for rejecting %s", paymentID))
	if !ok || strings.TrimSpace(reason) == "" {
		c.endAction()
		return nil
	}

	_, err := c.api.RejectPayment(ctx, paymentID, reason)
	if err != nil {
		c.logger.Errorw("failed to reject payment", "payment_id", paymentID, "error", err)
	}
	c.endAction()

	c.ClearSelection()
	c.Refresh(ctx)
	return err
}

// beginAction claims the processing flag for the selected payment. It fails
// when nothing is selected or another action is already in flight.
func (c *PaymentsController) beginAction() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processing || c.selectedID == "" {
		return "", false
	}
	c.processing = true
	return c.selectedID, true
}

func (c *PaymentsController) endAction() {
	c.mu.Lock()
	c.processing = false
	c.mu.Unlock()
}

// Render writes the review queue to w.
func (c *PaymentsController) Render(w io.Writer) {
	c.mu.Lock()
	payments := c.payments
	total := c.total
	status := c.status
	selectedID := c.selectedID
	c.mu.Unlock()

	if status == "" {
		status = "all"
	}
	fmt.Fprintf(w, "Payments (%d total, filter=%s)\n", total, status)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  PAYMENT ID\tUSER\tAMOUNT\tPLAN\tPLATFORMS\tSTATUS")
	for _, p := range payments {
		marker := " "
		if p.PaymentID == selectedID {
			marker = ">"
		}
		fmt.Fprintf(tw, "%s %s\t%d\t%.2f\t%s\t%s\t%s\n",
			marker, p.PaymentID, p.TelegramID, p.Amount, p.PlanType,
			strings.Join(p.Platforms, ","), p.Status)
	}
	tw.Flush()
}
