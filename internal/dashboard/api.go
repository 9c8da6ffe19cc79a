// Package dashboard implements the terminal screens operators use to run
// the bot: statistics overview, user directory, payment review queue and
// broadcast composer. Each screen is a controller holding its own state;
// rendering is a pure function of that state.
package dashboard

import (
	"context"

	"streamdesk/sdk/admin"
)

// API is the slice of the admin client the dashboard consumes. The base URL
// is bound when the client is constructed, never read from ambient state.
type API interface {
	GetStatistics(ctx context.Context) (*admin.Statistics, error)
	ListUsers(ctx context.Context, params admin.ListUsersParams) (*admin.UserList, error)
	GetUserDetail(ctx context.Context, telegramID int64) (*admin.UserDetail, error)
	DeleteUser(ctx context.Context, telegramID int64) error
	ListPayments(ctx context.Context, params admin.ListPaymentsParams) (*admin.PaymentList, error)
	ApprovePayment(ctx context.Context, paymentID string) (*admin.ActionResult, error)
	RejectPayment(ctx context.Context, paymentID, reason string) (*admin.ActionResult, error)
	ListBroadcasts(ctx context.Context, limit int) (*admin.BroadcastList, error)
	SendBroadcast(ctx context.Context, req admin.BroadcastRequest) (*admin.BroadcastReceipt, error)
}

var _ API = (*admin.Client)(nil)
