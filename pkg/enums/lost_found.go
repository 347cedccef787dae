package enums

import "fmt"

// LostFoundType marks whether a report concerns a lost or a found item.
type LostFoundType string

const (
	LostFoundTypeLost  LostFoundType = "lost"
	LostFoundTypeFound LostFoundType = "found"
)

var validLostFoundTypes = []LostFoundType{
	LostFoundTypeLost,
	LostFoundTypeFound,
}

// String implements fmt.Stringer.
func (t LostFoundType) String() string {
	return string(t)
}

// IsValid reports whether the value matches a known LostFoundType.
func (t LostFoundType) IsValid() bool {
	for _, candidate := range validLostFoundTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseLostFoundType converts raw input into a LostFoundType.
func ParseLostFoundType(value string) (LostFoundType, error) {
	for _, candidate := range validLostFoundTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lost/found type %q", value)
}

// LostFoundStatus tracks the lifecycle of a lost-and-found report.
type LostFoundStatus string

const (
	LostFoundStatusActive   LostFoundStatus = "active"
	LostFoundStatusResolved LostFoundStatus = "resolved"
	LostFoundStatusFlagged  LostFoundStatus = "flagged"
)

var validLostFoundStatuses = []LostFoundStatus{
	LostFoundStatusActive,
	LostFoundStatusResolved,
	LostFoundStatusFlagged,
}

// String implements fmt.Stringer.
func (s LostFoundStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known LostFoundStatus.
func (s LostFoundStatus) IsValid() bool {
	for _, candidate := range validLostFoundStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLostFoundStatus converts raw input into a LostFoundStatus.
func ParseLostFoundStatus(value string) (LostFoundStatus, error) {
	for _, candidate := range validLostFoundStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lost/found status %q", value)
}
