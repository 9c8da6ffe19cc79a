package dashboard

import (
	"context"
	"sync"

	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

type fakeAPI struct {
	mu sync.Mutex

	GetStatisticsFunc  func(ctx context.Context) (*admin.Statistics, error)
	ListUsersFunc      func(ctx context.Context, params admin.ListUsersParams) (*admin.UserList, error)
	GetUserDetailFunc  func(ctx context.Context, telegramID int64) (*admin.UserDetail, error)
	DeleteUserFunc     func(ctx context.Context, telegramID int64) error
	ListPaymentsFunc   func(ctx context.Context, params admin.ListPaymentsParams) (*admin.PaymentList, error)
	ApprovePaymentFunc func(ctx context.Context, paymentID string) (*admin.ActionResult, error)
	RejectPaymentFunc  func(ctx context.Context, paymentID, reason string) (*admin.ActionResult, error)
	ListBroadcastsFunc func(ctx context.Context, limit int) (*admin.BroadcastList, error)
	SendBroadcastFunc  func(ctx context.Context, req admin.BroadcastRequest) (*admin.BroadcastReceipt, error)

	listUsersCalls      []admin.ListUsersParams
	deleteUserCalls     []int64
	listPaymentsCalls   []admin.ListPaymentsParams
	approvePaymentCalls []string
	rejectPaymentCalls  [][2]string
	listBroadcastCalls  int
	sendBroadcastCalls  []admin.BroadcastRequest
}

func (f *fakeAPI) GetStatistics(ctx context.Context) (*admin.Statistics, error) {
	if f.GetStatisticsFunc != nil {
		return f.GetStatisticsFunc(ctx)
	}
	return &admin.Statistics{}, nil
}

func (f *fakeAPI) ListUsers(ctx context.Context, params admin.ListUsersParams) (*admin.UserList, error) {
	f.mu.Lock()
	f.listUsersCalls = append(f.listUsersCalls, params)
	f.mu.Unlock()
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, params)
	}
	return &admin.UserList{Users: []admin.User{}}, nil
}

func (f *fakeAPI) GetUserDetail(ctx context.Context, telegramID int64) (*admin.UserDetail, error) {
	if f.GetUserDetailFunc != nil {
		return f.GetUserDetailFunc(ctx, telegramID)
	}
	return &admin.UserDetail{User: admin.User{TelegramID: telegramID}}, nil
}

func (f *fakeAPI) DeleteUser(ctx context.Context, telegramID int64) error {
	f.mu.Lock()
	f.deleteUserCalls = append(f.deleteUserCalls, telegramID)
	f.mu.Unlock()
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, telegramID)
	}
	return nil
}

func (f *fakeAPI) ListPayments(ctx context.Context, params admin.ListPaymentsParams) (*admin.PaymentList, error) {
	f.mu.Lock()
	f.listPaymentsCalls = append(f.listPaymentsCalls, params)
	f.mu.Unlock()
	if f.ListPaymentsFunc != nil {
		return f.ListPaymentsFunc(ctx, params)
	}
	return &admin.PaymentList{Payments: []admin.Payment{}}, nil
}

func (f *fakeAPI) ApprovePayment(ctx context.Context, paymentID string) (*admin.ActionResult, error) {
	f.mu.Lock()
	f.approvePaymentCalls = append(f.approvePaymentCalls, paymentID)
	f.mu.Unlock()
	if f.ApprovePaymentFunc != nil {
		return f.ApprovePaymentFunc(ctx, paymentID)
	}
	return &admin.ActionResult{Message: "Payment approved", PaymentID: paymentID}, nil
}

func (f *fakeAPI) RejectPayment(ctx context.Context, paymentID, reason string) (*admin.ActionResult, error) {
	f.mu.Lock()
	f.rejectPaymentCalls = append(f.rejectPaymentCalls, [2]string{paymentID, reason})
	f.mu.Unlock()
	if f.RejectPaymentFunc != nil {
		return f.RejectPaymentFunc(ctx, paymentID, reason)
	}
	return &admin.ActionResult{Message: "Payment rejected", PaymentID: paymentID}, nil
}

func (f *fakeAPI) ListBroadcasts(ctx context.Context, limit int) (*admin.BroadcastList, error) {
	f.mu.Lock()
	f.listBroadcastCalls++
	f.mu.Unlock()
	if f.ListBroadcastsFunc != nil {
		return f.ListBroadcastsFunc(ctx, limit)
	}
	return &admin.BroadcastList{Broadcasts: []admin.Broadcast{}}, nil
}

func (f *fakeAPI) SendBroadcast(ctx context.Context, req admin.BroadcastRequest) (*admin.BroadcastReceipt, error) {
	f.mu.Lock()
	f.sendBroadcastCalls = append(f.sendBroadcastCalls, req)
	f.mu.Unlock()
	if f.SendBroadcastFunc != nil {
		return f.SendBroadcastFunc(ctx, req)
	}
	return &admin.BroadcastReceipt{Message: "Broadcast queued"}, nil
}

func (f *fakeAPI) userCalls() []admin.ListUsersParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]admin.ListUsersParams(nil), f.listUsersCalls...)
}

func (f *fakeAPI) paymentCalls() []admin.ListPaymentsParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]admin.ListPaymentsParams(nil), f.listPaymentsCalls...)
}

type fakePrompter struct {
	mu           sync.Mutex
	confirmReply bool
	promptReply  string
	promptOK     bool
	confirmCalls []string
	promptCalls  []string
}

func (p *fakePrompter) Confirm(message string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmCalls = append(p.confirmCalls, message)
	return p.confirmReply
}

func (p *fakePrompter) Prompt(message string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promptCalls = append(p.promptCalls, message)
	return p.promptReply, p.promptOK
}

func (p *fakePrompter) confirms() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.confirmCalls)
}

func noopLogger() logger.Interface {
	return &nopLogger{}
}

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)           {}
func (l *nopLogger) Info(msg string, args ...any)            {}
func (l *nopLogger) Warn(msg string, args ...any)            {}
func (l *nopLogger) Error(msg string, args ...any)           {}
func (l *nopLogger) With(args ...any) logger.Interface       { return l }
func (l *nopLogger) Named(name string) logger.Interface      { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...any) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...any)  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...any) {}
