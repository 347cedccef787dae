package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/internal/sessiongate"
	"github.com/residensync/residensync-backend/pkg/enums"
)

type stubProfileResolver struct {
	profile *sessiongate.Profile
	err     error
}

func (s stubProfileResolver) GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error) {
	return s.profile, s.err
}

func newApprovalRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(WithUserID(req.Context(), userID))
}

func TestRequireApprovedAllowsActiveStatuses(t *testing.T) {
	for _, status := range []enums.UserStatus{enums.UserStatusApproved, enums.UserStatusActive} {
		resolver := stubProfileResolver{profile: &sessiongate.Profile{
			UserID: uuid.New(),
			Status: status,
			Role:   enums.UserRoleUser,
		}}
		handler := RequireApproved(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, newApprovalRequest(uuid.NewString()))
		if resp.Code != http.StatusOK {
			t.Fatalf("status %s: expected 200 got %d", status, resp.Code)
		}
	}
}

func TestRequireApprovedBlocksPendingAndRejected(t *testing.T) {
	for _, status := range []enums.UserStatus{enums.UserStatusPendingApproval, enums.UserStatusRejected} {
		resolver := stubProfileResolver{profile: &sessiongate.Profile{
			UserID: uuid.New(),
			Status: status,
			Role:   enums.UserRoleUser,
		}}
		handler := RequireApproved(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, newApprovalRequest(uuid.NewString()))
		if resp.Code != http.StatusForbidden {
			t.Fatalf("status %s: expected 403 got %d", status, resp.Code)
		}
	}
}

func TestRequireApprovedRejectsMissingProfile(t *testing.T) {
	handler := RequireApproved(stubProfileResolver{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newApprovalRequest(uuid.NewString()))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRequireApprovedSurfacesResolverFailure(t *testing.T) {
	resolver := stubProfileResolver{err: errors.New("db down")}
	handler := RequireApproved(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newApprovalRequest(uuid.NewString()))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
