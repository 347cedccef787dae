package enums

import "testing"

func TestDocumentRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    DocumentRequestStatus
		to      DocumentRequestStatus
		allowed bool
	}{
		{DocumentRequestStatusPending, DocumentRequestStatusProcessing, true},
		{DocumentRequestStatusPending, DocumentRequestStatusOnHold, true},
		{DocumentRequestStatusPending, DocumentRequestStatusReleased, false},
		{DocumentRequestStatusProcessing, DocumentRequestStatusReadyForPickup, true},
		{DocumentRequestStatusProcessing, DocumentRequestStatusPending, false},
		{DocumentRequestStatusOnHold, DocumentRequestStatusProcessing, true},
		{DocumentRequestStatusReadyForPickup, DocumentRequestStatusReleased, true},
		{DocumentRequestStatusReadyForPickup, DocumentRequestStatusRejected, false},
		{DocumentRequestStatusReleased, DocumentRequestStatusPending, false},
		{DocumentRequestStatusCancelled, DocumentRequestStatusProcessing, false},
		{DocumentRequestStatusRejected, DocumentRequestStatusProcessing, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected allowed=%v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestDocumentRequestStatusTerminal(t *testing.T) {
	for _, status := range []DocumentRequestStatus{
		DocumentRequestStatusReleased,
		DocumentRequestStatusCancelled,
		DocumentRequestStatusRejected,
	} {
		if !status.IsTerminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	if DocumentRequestStatusPending.IsTerminal() {
		t.Fatal("expected Pending to be non-terminal")
	}
}

func TestParseUserStatus(t *testing.T) {
	if _, err := ParseUserStatus("pending_approval"); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := ParseUserStatus("banned"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
