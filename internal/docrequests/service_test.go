package docrequests

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubRequestRepo struct {
	requests map[uuid.UUID]*models.DocumentRequest
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[uuid.UUID]*models.DocumentRequest)}
}

func (s *stubRequestRepo) Create(ctx context.Context, req *models.DocumentRequest) (*models.DocumentRequest, error) {
	req.ID = uuid.New()
	s.requests[req.ID] = req
	return req, nil
}

func (s *stubRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.DocumentRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *req
	return &copied, nil
}

func (s *stubRequestRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.DocumentRequest, error) {
	var rows []models.DocumentRequest
	for _, req := range s.requests {
		if req.UserID == userID {
			rows = append(rows, *req)
		}
	}
	return rows, nil
}

func (s *stubRequestRepo) ListAll(ctx context.Context, limit int) ([]models.DocumentRequest, error) {
	var rows []models.DocumentRequest
	for _, req := range s.requests {
		rows = append(rows, *req)
	}
	return rows, nil
}

func (s *stubRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.DocumentRequestStatus, dateReleased *time.Time) error {
	req, ok := s.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	if dateReleased != nil {
		req.DateReleased = dateReleased
	}
	return nil
}

type stubRequesterRepo struct {
	requester *models.User
}

func (s *stubRequesterRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.requester != nil && s.requester.ID == id {
		return s.requester, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func buildService(t *testing.T, repo *stubRequestRepo, requester *models.User, now func() time.Time) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		RequestRepo:   repo,
		RequesterRepo: &stubRequesterRepo{requester: requester},
		Now:           now,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testRequester() *models.User {
	return &models.User{
		ID:       uuid.New(),
		FullName: "Ana Dela Cruz",
		Role:     enums.UserRoleUser,
		Status:   enums.UserStatusActive,
	}
}

func TestCreateFilesPendingRequestWithDefaults(t *testing.T) {
	requester := testRequester()
	repo := newStubRequestRepo()
	fixed := time.Date(2025, time.August, 30, 9, 30, 0, 0, time.UTC)
	svc := buildService(t, repo, requester, func() time.Time { return fixed })

	dto, err := svc.Create(context.Background(), requester.ID, CreateRequest{
		Purpose: "Proof of residency for job application",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.DocumentRequestStatusPending {
		t.Fatalf("expected Pending, got %s", dto.Status)
	}
	if dto.DocumentName != enums.DocumentTypeBarangayPermit {
		t.Fatalf("expected default document type, got %s", dto.DocumentName)
	}
	if !dto.Fee.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected fee 50, got %s", dto.Fee)
	}
	if !dto.DateRequested.Equal(fixed) {
		t.Fatalf("expected date_requested %v, got %v", fixed, dto.DateRequested)
	}
	if !strings.HasPrefix(dto.RequestID, "BP-") || len(dto.RequestID) != len("BP-")+6 {
		t.Fatalf("unexpected request id %q", dto.RequestID)
	}
	millis := strconv.FormatInt(fixed.UnixMilli(), 10)
	want := "BP-" + millis[len(millis)-6:]
	if dto.RequestID != want {
		t.Fatalf("expected request id %q, got %q", want, dto.RequestID)
	}
}

func TestCreateRejectsUnknownDocumentType(t *testing.T) {
	requester := testRequester()
	repo := newStubRequestRepo()
	svc := buildService(t, repo, requester, nil)

	_, err := svc.Create(context.Background(), requester.ID, CreateRequest{
		DocumentName: "Passport",
		Purpose:      "Travel",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.requests) != 0 {
		t.Fatalf("expected no write for invalid document type")
	}
}

func TestListMineScopesToRequester(t *testing.T) {
	requester := testRequester()
	repo := newStubRequestRepo()
	svc := buildService(t, repo, requester, nil)

	if _, err := svc.Create(context.Background(), requester.ID, CreateRequest{Purpose: "Clearance"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := &models.DocumentRequest{UserID: uuid.New(), Status: enums.DocumentRequestStatusPending}
	if _, err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := svc.ListMine(context.Background(), requester.ID, 0)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != requester.ID {
		t.Fatalf("expected only the requester's rows, got %d", len(rows))
	}
	if rows[0].Purpose != "Clearance" {
		t.Fatalf("expected purpose round-trip, got %q", rows[0].Purpose)
	}
	if !rows[0].Fee.Equal(decimal.NewFromInt(50)) || rows[0].Status != enums.DocumentRequestStatusPending {
		t.Fatalf("expected default fee and Pending status, got fee=%s status=%s", rows[0].Fee, rows[0].Status)
	}
}

func TestUpdateStatusFollowsClerkWorkflow(t *testing.T) {
	requester := testRequester()
	repo := newStubRequestRepo()
	released := time.Date(2025, time.September, 2, 14, 0, 0, 0, time.UTC)
	svc := buildService(t, repo, requester, func() time.Time { return released })

	dto, err := svc.Create(context.Background(), requester.ID, CreateRequest{Purpose: "Business permit renewal"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Pending cannot jump straight to Released.
	_, err = svc.UpdateStatus(context.Background(), dto.ID, UpdateStatusRequest{Status: "Released"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), dto.ID, UpdateStatusRequest{Status: "Ready for Pickup"})
	if err != nil {
		t.Fatalf("ready for pickup: %v", err)
	}
	if updated.Status != enums.DocumentRequestStatusReadyForPickup {
		t.Fatalf("expected Ready for Pickup, got %s", updated.Status)
	}
	if updated.DateReleased != nil {
		t.Fatalf("release date must not be set before release")
	}

	final, err := svc.UpdateStatus(context.Background(), dto.ID, UpdateStatusRequest{Status: "Released"})
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if final.DateReleased == nil || !final.DateReleased.Equal(released) {
		t.Fatalf("expected release date %v, got %v", released, final.DateReleased)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := buildService(t, newStubRequestRepo(), testRequester(), nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), UpdateStatusRequest{Status: "Archived"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
