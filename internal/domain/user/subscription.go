package user

import (
	"fmt"
	"strings"
	"time"

	"streamdesk/internal/shared/biztime"
)

// Plan durations granted when a payment for the plan is approved.
const (
	PlanWeekly  = "weekly"
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// PlanDuration returns the subscription length granted for a plan type.
// Unknown plans fall back to the monthly duration.
func PlanDuration(planType string) time.Duration {
	switch strings.ToLower(planType) {
	case PlanWeekly:
		return 7 * 24 * time.Hour
	case PlanYearly:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Subscription is a value object embedded in a user. It carries no identity
// of its own; a user's subscription list is replaced wholesale on update.
type Subscription struct {
	planType   string
	expiryDate time.Time
	amountPaid float64
}

func NewSubscription(planType string, expiryDate time.Time, amountPaid float64) (Subscription, error) {
	if strings.TrimSpace(planType) == "" {
		return Subscription{}, fmt.Errorf("plan type is required")
	}
	if expiryDate.IsZero() {
		return Subscription{}, fmt.Errorf("expiry date is required")
	}
	if amountPaid < 0 {
		return Subscription{}, fmt.Errorf("amount paid cannot be negative")
	}

	return Subscription{
		planType:   planType,
		expiryDate: expiryDate.UTC(),
		amountPaid: amountPaid,
	}, nil
}

func (s Subscription) PlanType() string {
	return s.planType
}

func (s Subscription) ExpiryDate() time.Time {
	return s.expiryDate
}

func (s Subscription) AmountPaid() float64 {
	return s.amountPaid
}

func (s Subscription) IsExpired() bool {
	return biztime.NowUTC().After(s.expiryDate)
}
