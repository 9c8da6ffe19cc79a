package user

import "context"

// Status filter values for user listings and broadcast targeting.
const (
	StatusAll     = "all"
	StatusActive  = "active"
	StatusExpired = "expired"
)

// ValidStatus reports whether s is a recognized status filter.
func ValidStatus(s string) bool {
	switch s {
	case StatusAll, StatusActive, StatusExpired:
		return true
	}
	return false
}

// ListFilter narrows a user listing. Search matches username or first name
// as a substring, or the exact telegram ID when numeric. Empty Status (or
// StatusAll) means no status restriction.
type ListFilter struct {
	Limit  int
	Skip   int
	Search string
	Status string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Delete(ctx context.Context, telegramID int64) error

	// ListTelegramIDsByStatus returns the telegram IDs of every user
	// matching the status filter, for freezing broadcast recipient lists.
	ListTelegramIDsByStatus(ctx context.Context, status string) ([]int64, error)
}
