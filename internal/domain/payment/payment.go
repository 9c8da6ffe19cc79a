package payment

import (
	"fmt"
	"strings"
	"time"

	"streamdesk/internal/shared/biztime"
	"streamdesk/internal/shared/id"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// DefaultRejectionReason is recorded when a rejection carries no reason.
const DefaultRejectionReason = "Payment verification failed"

func (s Status) IsFinal() bool {
	return s == StatusVerified || s == StatusRejected
}

// ValidStatus reports whether s is a recognized payment status filter.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return s == "all"
}

// Payment is a manual payment submission awaiting operator review.
// Payments are created by the bot's payment flow; the dashboard only
// transitions them pending→verified or pending→rejected, both terminal.
type Payment struct {
	id               uint
	paymentID        string
	telegramID       int64
	amount           float64
	planType         string
	platforms        []string
	upiID            string
	transactionID    *string
	screenshotURL    *string
	status           Status
	verificationDate *time.Time
	rejectionReason  *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPayment(telegramID int64, amount float64, planType string, platforms []string, upiID string) (*Payment, error) {
	if telegramID == 0 {
		return nil, fmt.Errorf("telegram ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if strings.TrimSpace(planType) == "" {
		return nil, fmt.Errorf("plan type is required")
	}

	now := biztime.NowUTC()
	return &Payment{
		paymentID:  id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		telegramID: telegramID,
		amount:     amount,
		planType:   planType,
		platforms:  platforms,
		upiID:      upiID,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// PaymentReconstructParams carries persisted state back into a Payment.
type PaymentReconstructParams struct {
	ID               uint
	PaymentID        string
	TelegramID       int64
	Amount           float64
	PlanType         string
	Platforms        []string
	UPIID            string
	TransactionID    *string
	ScreenshotURL    *string
	Status           Status
	VerificationDate *time.Time
	RejectionReason  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructPayment(params PaymentReconstructParams) *Payment {
	return &Payment{
		id:               params.ID,
		paymentID:        params.PaymentID,
		telegramID:       params.TelegramID,
		amount:           params.Amount,
		planType:         params.PlanType,
		platforms:        params.Platforms,
		upiID:            params.UPIID,
		transactionID:    params.TransactionID,
		screenshotURL:    params.ScreenshotURL,
		status:           params.Status,
		verificationDate: params.VerificationDate,
		rejectionReason:  params.RejectionReason,
		createdAt:        params.CreatedAt,
		updatedAt:        params.UpdatedAt,
	}
}

// Approve transitions pending→verified and stamps the verification time.
// Verified and rejected are terminal; approving them is an error.
func (p *Payment) Approve() error {
	if p.status != StatusPending {
		return fmt.Errorf("cannot approve payment with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = StatusVerified
	p.verificationDate = &now
	p.updatedAt = now

	return nil
}

// Reject transitions pending→rejected. An empty reason is replaced with
// DefaultRejectionReason so a rejected payment always explains itself.
func (p *Payment) Reject(reason string) error {
	if p.status != StatusPending {
		return fmt.Errorf("cannot reject payment with status %s", p.status)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}

	p.status = StatusRejected
	p.rejectionReason = &reason
	p.updatedAt = biztime.NowUTC()

	return nil
}

func (p *Payment) SetTransactionID(transactionID string) {
	p.transactionID = &transactionID
	p.updatedAt = biztime.NowUTC()
}

func (p *Payment) SetScreenshotURL(url string) {
	p.screenshotURL = &url
	p.updatedAt = biztime.NowUTC()
}

// SetID sets the payment ID after persistence (used by repository after Create)
func (p *Payment) SetID(id uint) {
	p.id = id
}

func (p *Payment) ID() uint {
	return p.id
}

func (p *Payment) PaymentID() string {
	return p.paymentID
}

func (p *Payment) TelegramID() int64 {
	return p.telegramID
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) PlanType() string {
	return p.planType
}

func (p *Payment) Platforms() []string {
	return p.platforms
}

func (p *Payment) UPIID() string {
	return p.upiID
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) ScreenshotURL() *string {
	return p.screenshotURL
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) VerificationDate() *time.Time {
	return p.verificationDate
}

func (p *Payment) RejectionReason() *string {
	return p.rejectionReason
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}
