package enums

import "fmt"

// DocumentRequestStatus mirrors the clerk-facing labels shown to residents,
// so the values are display strings rather than snake_case identifiers.
type DocumentRequestStatus string

const (
	DocumentRequestStatusPending        DocumentRequestStatus = "Pending"
	DocumentRequestStatusProcessing     DocumentRequestStatus = "Processing"
	DocumentRequestStatusOnHold         DocumentRequestStatus = "On Hold"
	DocumentRequestStatusReadyForPickup DocumentRequestStatus = "Ready for Pickup"
	DocumentRequestStatusReleased       DocumentRequestStatus = "Released"
	DocumentRequestStatusCancelled      DocumentRequestStatus = "Cancelled"
	DocumentRequestStatusRejected       DocumentRequestStatus = "Rejected"
)

var validDocumentRequestStatuses = []DocumentRequestStatus{
	DocumentRequestStatusPending,
	DocumentRequestStatusProcessing,
	DocumentRequestStatusOnHold,
	DocumentRequestStatusReadyForPickup,
	DocumentRequestStatusReleased,
	DocumentRequestStatusCancelled,
	DocumentRequestStatusRejected,
}

var documentRequestTransitions = map[DocumentRequestStatus][]DocumentRequestStatus{
	DocumentRequestStatusPending: {
		DocumentRequestStatusProcessing,
		DocumentRequestStatusOnHold,
		DocumentRequestStatusReadyForPickup,
		DocumentRequestStatusRejected,
		DocumentRequestStatusCancelled,
	},
	DocumentRequestStatusProcessing: {
		DocumentRequestStatusOnHold,
		DocumentRequestStatusReadyForPickup,
		DocumentRequestStatusRejected,
		DocumentRequestStatusCancelled,
	},
	DocumentRequestStatusOnHold: {
		DocumentRequestStatusProcessing,
		DocumentRequestStatusReadyForPickup,
		DocumentRequestStatusRejected,
		DocumentRequestStatusCancelled,
	},
	DocumentRequestStatusReadyForPickup: {
		DocumentRequestStatusReleased,
		DocumentRequestStatusCancelled,
	},
}

// String implements fmt.Stringer.
func (s DocumentRequestStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known DocumentRequestStatus.
func (s DocumentRequestStatus) IsValid() bool {
	for _, candidate := range validDocumentRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from the status.
func (s DocumentRequestStatus) IsTerminal() bool {
	return len(documentRequestTransitions[s]) == 0
}

// CanTransitionTo reports whether the clerk workflow allows moving to next.
func (s DocumentRequestStatus) CanTransitionTo(next DocumentRequestStatus) bool {
	for _, candidate := range documentRequestTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseDocumentRequestStatus converts raw input into a DocumentRequestStatus.
func ParseDocumentRequestStatus(value string) (DocumentRequestStatus, error) {
	for _, candidate := range validDocumentRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document request status %q", value)
}
