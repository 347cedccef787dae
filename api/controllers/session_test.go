package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/middleware"
	"github.com/residensync/residensync-backend/internal/sessiongate"
	"github.com/residensync/residensync-backend/internal/users"
	"github.com/residensync/residensync-backend/pkg/enums"
	"github.com/residensync/residensync-backend/pkg/logger"
)

type stubGateUserService struct {
	profile *sessiongate.Profile
	err     error
}

func (s stubGateUserService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return nil, errors.New("not used")
}

func (s stubGateUserService) GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error) {
	return s.profile, s.err
}

func snapshotFor(t *testing.T, svc users.Service) sessiongate.Snapshot {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-session", Output: io.Discard})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	SessionSnapshot(svc, logg)(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data sessiongate.Snapshot `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return envelope.Data
}

func TestSessionSnapshotPendingAccount(t *testing.T) {
	snapshot := snapshotFor(t, stubGateUserService{profile: &sessiongate.Profile{
		UserID: uuid.New(),
		Status: enums.UserStatusPendingApproval,
		Role:   enums.UserRoleUser,
	}})

	if snapshot.State != sessiongate.StatePendingApproval {
		t.Fatalf("expected pending_approval got %q", snapshot.State)
	}
	if snapshot.Loading {
		t.Fatal("snapshot must be settled after both observations")
	}
	if snapshot.IsAdmin {
		t.Fatal("resident must not report admin")
	}
	if snapshot.EntryRoute != "/pending-approval" {
		t.Fatalf("unexpected entry route %q", snapshot.EntryRoute)
	}
}

func TestSessionSnapshotAdminAccount(t *testing.T) {
	snapshot := snapshotFor(t, stubGateUserService{profile: &sessiongate.Profile{
		UserID: uuid.New(),
		Status: enums.UserStatusActive,
		Role:   enums.UserRoleAdmin,
	}})

	if snapshot.State != sessiongate.StateActive {
		t.Fatalf("expected active got %q", snapshot.State)
	}
	if !snapshot.IsAdmin {
		t.Fatal("admin profile must report is_admin")
	}
	if snapshot.EntryRoute != "/home" {
		t.Fatalf("unexpected entry route %q", snapshot.EntryRoute)
	}
}

func TestSessionSnapshotDegradesOnProfileReadFailure(t *testing.T) {
	snapshot := snapshotFor(t, stubGateUserService{err: errors.New("store down")})

	if snapshot.State != sessiongate.StateUnauthenticated {
		t.Fatalf("failed profile read must degrade to unauthenticated, got %q", snapshot.State)
	}
	if snapshot.IsAdmin {
		t.Fatal("degraded snapshot must not report admin")
	}
	if snapshot.EntryRoute != "/auth/login" {
		t.Fatalf("unexpected entry route %q", snapshot.EntryRoute)
	}
}

func TestSessionSnapshotMissingProfileRecord(t *testing.T) {
	snapshot := snapshotFor(t, stubGateUserService{})

	if snapshot.State != sessiongate.StateUnauthenticated {
		t.Fatalf("absent profile record must resolve unauthenticated, got %q", snapshot.State)
	}
	if snapshot.Loading {
		t.Fatal("absent record is a settled observation, not loading")
	}
}
