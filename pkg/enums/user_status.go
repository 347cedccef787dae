package enums

import "fmt"

// UserStatus captures the approval lifecycle of a resident account.
type UserStatus string

const (
	UserStatusPendingApproval UserStatus = "pending_approval"
	UserStatusApproved        UserStatus = "approved"
	UserStatusActive          UserStatus = "active"
	UserStatusRejected        UserStatus = "rejected"
)

var validUserStatuses = []UserStatus{
	UserStatusPendingApproval,
	UserStatusApproved,
	UserStatusActive,
	UserStatusRejected,
}

// String implements fmt.Stringer.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known UserStatus.
func (s UserStatus) IsValid() bool {
	for _, candidate := range validUserStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(value string) (UserStatus, error) {
	for _, candidate := range validUserStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user status %q", value)
}
