package dashboard

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

const defaultPageSize = 50

// UsersController drives the user directory and detail panel. Typing into
// the search box never triggers a fetch; only SubmitSearch does. Status
// filter changes refetch immediately and drop the current selection, since
// the selected user may not exist under the new filter.
type UsersController struct {
	api      API
	prompter Prompter
	logger   logger.Interface
	pageSize int

	mu          sync.Mutex
	seq         uint64
	searchInput string
	search      string
	status      string
	skip        int
	users       []admin.User
	total       int64
	detail      *admin.UserDetail
}

func NewUsersController(api API, prompter Prompter, log logger.Interface) *UsersController {
	return &UsersController{
		api:      api,
		prompter: prompter,
		logger:   log,
		pageSize: defaultPageSize,
	}
}

// SetSearchInput records what the operator has typed so far. No fetch.
func (c *UsersController) SetSearchInput(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchInput = input
}

// SubmitSearch applies the typed search term and refetches the list.
func (c *UsersController) SubmitSearch(ctx context.Context) {
	c.mu.Lock()
	c.search = c.searchInput
	c.skip = 0
	c.mu.Unlock()

	c.Refresh(ctx)
}

// SetStatusFilter switches the status filter, clears the selection and
// refetches.
func (c *UsersController) SetStatusFilter(ctx context.Context, status string) {
	c.mu.Lock()
	c.status = status
	c.skip = 0
	c.detail = nil
	c.mu.Unlock()

	c.Refresh(ctx)
}

// NextPage advances pagination and refetches.
func (c *UsersController) NextPage(ctx context.Context) {
	c.mu.Lock()
	if int64(c.skip+c.pageSize) < c.total {
		c.skip += c.pageSize
	}
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh fetches the user list for the current filters. Responses that
// arrive after a newer fetch has been issued are discarded so the list
// always reflects the latest requested parameters.
func (c *UsersController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	params := admin.ListUsersParams{
		Limit:  c.pageSize,
		Skip:   c.skip,
		Search: c.search,
		Status: c.status,
	}
	c.mu.Unlock()

	list, err := c.api.ListUsers(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	if err != nil {
		c.logger.Errorw("failed to list users", "error", err)
		return
	}
	c.users = list.Users
	c.total = list.Total
}

// Select fetches the detail panel for one user, replacing any previous
// selection.
func (c *UsersController) Select(ctx context.Context, telegramID int64) error {
	detail, err := c.api.GetUserDetail(ctx, telegramID)
	if err != nil {
		c.logger.Errorw("failed to fetch user detail", "telegram_id", telegramID, "error", err)
		return err
	}

	c.mu.Lock()
	c.detail = detail
	c.mu.Unlock()
	return nil
}

// ClearSelection drops the detail panel.
func (c *UsersController) ClearSelection() {
	c.mu.Lock()
	c.detail = nil
	c.mu.Unlock()
}

// Selected returns the current detail selection, or nil.
func (c *UsersController) Selected() *admin.UserDetail {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detail
}

// Users returns the current page.
func (c *UsersController) Users() []admin.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users
}

// Total returns the backend-reported total for the current filters.
func (c *UsersController) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Delete removes the selected user after confirmation. Declining issues no
// calls. After a confirmed delete the list is refetched and the selection
// cleared whether or not the delete succeeded.
func (c *UsersController) Delete(ctx context.Context) error {
	c.mu.Lock()
	detail := c.detail
	c.mu.Unlock()

	if detail == nil {
		return nil
	}

	telegramID := detail.User.TelegramID
	if !c.prompter.Confirm(fmt.Sprintf("Delete user %d and all their payments?", telegramID)) {
		return nil
	}

	err := c.api.DeleteUser(ctx, telegramID)
	if err != nil {
		c.logger.Errorw("failed to delete user", "telegram_id", telegramID, "error", err)
	}

	c.ClearSelection()
	c.Refresh(ctx)
	return err
}

// Render writes the directory and, when selected, the detail panel to w.
func (c *UsersController) Render(w io.Writer) {
	c.mu.Lock()
	users := c.users
	total := c.total
	search := c.search
	status := c.status
	detail := c.detail
	c.mu.Unlock()

	if status == "" {
		status = "all"
	}
	fmt.Fprintf(w, "Users (%d total, filter=%s", total, status)
	if search != "" {
		fmt.Fprintf(w, ", search=%q", search)
	}
	fmt.Fprintln(w, ")")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  TELEGRAM ID\tUSERNAME\tNAME\tSPENT\tSUBSCRIPTIONS")
	for _, u := range users {
		fmt.Fprintf(tw, "  %d\t%s\t%s %s\t%.2f\t%d\n",
			u.TelegramID, u.TelegramUsername, u.FirstName, u.LastName,
			u.TotalSpent, len(u.ActiveSubscriptions))
	}
	tw.Flush()

	if detail != nil {
		fmt.Fprintf(w, "\nSelected: %d (%s)\n", detail.User.TelegramID, detail.User.TelegramUsername)
		for _, s := range detail.User.ActiveSubscriptions {
			fmt.Fprintf(w, "  subscription %s until %s\n", s.PlanType, s.ExpiryDate)
		}
		fmt.Fprintf(w, "  %d payments on record\n", len(detail.Payments))
		for _, p := range detail.Payments {
			fmt.Fprintf(w, "    %s %s %.2f (%s)\n", p.PaymentID, p.PlanType, p.Amount, p.Status)
		}
	}
}
