package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/internal/auth"
	"github.com/residensync/residensync-backend/internal/docrequests"
	"github.com/residensync/residensync-backend/internal/lostfound"
	"github.com/residensync/residensync-backend/internal/pets"
	"github.com/residensync/residensync-backend/internal/posts"
	"github.com/residensync/residensync-backend/internal/sessiongate"
	"github.com/residensync/residensync-backend/internal/users"
	pkgauth "github.com/residensync/residensync-backend/pkg/auth"
	"github.com/residensync/residensync-backend/pkg/config"
	"github.com/residensync/residensync-backend/pkg/enums"
	"github.com/residensync/residensync-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{}, nil
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return &auth.RefreshResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error { return nil }

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.RegisterResponse, error) {
	return &auth.RegisterResponse{User: &users.UserDTO{
		ID:     uuid.New(),
		Email:  req.Email,
		Status: enums.UserStatusPendingApproval,
		Role:   enums.UserRoleUser,
	}}, nil
}

type stubUserService struct {
	status enums.UserStatus
	role   enums.UserRole
}

func (s stubUserService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Status: s.status, Role: s.role}, nil
}

func (s stubUserService) GateProfile(ctx context.Context, userID uuid.UUID) (*sessiongate.Profile, error) {
	return &sessiongate.Profile{UserID: userID, Status: s.status, Role: s.role}, nil
}

type stubApprovalService struct{}

func (stubApprovalService) ListPending(ctx context.Context, limit int) ([]users.UserDTO, error) {
	return nil, nil
}

func (stubApprovalService) Approve(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

func (stubApprovalService) Reject(ctx context.Context, adminID, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

type stubPostService struct{}

func (stubPostService) Create(ctx context.Context, actorID uuid.UUID, actorRole enums.UserRole, req posts.CreateRequest) (*posts.PostDTO, error) {
	return &posts.PostDTO{}, nil
}

func (stubPostService) ListAnnouncements(ctx context.Context, limit int) ([]posts.PostDTO, error) {
	return nil, nil
}

func (stubPostService) ListSchedule(ctx context.Context, limit int) ([]posts.PostDTO, error) {
	return nil, nil
}

type stubLostFoundService struct{}

func (stubLostFoundService) Create(ctx context.Context, reporterID uuid.UUID, req lostfound.CreateRequest) (*lostfound.ItemDTO, error) {
	return &lostfound.ItemDTO{}, nil
}

func (stubLostFoundService) ListActive(ctx context.Context, limit int) ([]lostfound.ItemDTO, error) {
	return nil, nil
}

func (stubLostFoundService) Resolve(ctx context.Context, itemID uuid.UUID) (*lostfound.ItemDTO, error) {
	return &lostfound.ItemDTO{}, nil
}

func (stubLostFoundService) Flag(ctx context.Context, itemID uuid.UUID) (*lostfound.ItemDTO, error) {
	return &lostfound.ItemDTO{}, nil
}

type stubDocRequestService struct{}

func (stubDocRequestService) Create(ctx context.Context, requesterID uuid.UUID, req docrequests.CreateRequest) (*docrequests.RequestDTO, error) {
	return &docrequests.RequestDTO{}, nil
}

func (stubDocRequestService) ListMine(ctx context.Context, requesterID uuid.UUID, limit int) ([]docrequests.RequestDTO, error) {
	return nil, nil
}

func (stubDocRequestService) ListAll(ctx context.Context, limit int) ([]docrequests.RequestDTO, error) {
	return nil, nil
}

func (stubDocRequestService) UpdateStatus(ctx context.Context, requestID uuid.UUID, req docrequests.UpdateStatusRequest) (*docrequests.RequestDTO, error) {
	return &docrequests.RequestDTO{}, nil
}

type stubPetService struct{}

func (stubPetService) Create(ctx context.Context, ownerID uuid.UUID, req pets.CreateRequest) (*pets.PetDTO, error) {
	return &pets.PetDTO{}, nil
}

func (stubPetService) ListMine(ctx context.Context, ownerID uuid.UUID, limit int) ([]pets.PetDTO, error) {
	return nil, nil
}

func (stubPetService) Get(ctx context.Context, ownerID, petID uuid.UUID) (*pets.PetDTO, error) {
	return &pets.PetDTO{}, nil
}

func (stubPetService) Update(ctx context.Context, ownerID, petID uuid.UUID, req pets.UpdateRequest) (*pets.PetDTO, error) {
	return &pets.PetDTO{}, nil
}

func (stubPetService) Delete(ctx context.Context, ownerID, petID uuid.UUID) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:                 "router-test-secret",
			Issuer:                 "residensync",
			ExpirationMinutes:      15,
			RefreshTokenTTLMinutes: 60,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:8081"}},
	}
}

func newTestRouter(cfg *config.Config, userStatus enums.UserStatus, userRole enums.UserRole) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(RouterParams{
		Config:          cfg,
		Logger:          logg,
		DBPinger:        stubPinger{},
		RedisPinger:     stubPinger{},
		SessionChecker:  stubSessionChecker{},
		AuthService:     stubAuthService{},
		RegisterService: stubRegisterService{},
		UserService:     stubUserService{status: userStatus, role: userRole},
		ApprovalService: stubApprovalService{},
		PostService:     stubPostService{},
		LostFoundSvc:    stubLostFoundService{},
		DocRequestSvc:   stubDocRequestService{},
		PetService:      stubPetService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRegisterCreatesAccountWithoutSession(t *testing.T) {
	router := newTestRouter(testConfig(), enums.UserStatusPendingApproval, enums.UserRoleUser)

	body := strings.NewReader(`{
		"full_name": "Juana Dela Cruz",
		"email": "juana@example.com",
		"contact_no": "09170000000",
		"address": "123 Mabini St",
		"password": "long-enough-secret",
		"confirm_password": "long-enough-secret",
		"agree_to_terms": true
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("X-RS-Token"); got != "" {
		t.Fatalf("signup must not issue a session token, got header %q", got)
	}
	payload := resp.Body.String()
	if strings.Contains(payload, "access_token") || strings.Contains(payload, "refresh_token") {
		t.Fatalf("signup response must not carry tokens: %s", payload)
	}
	if !strings.Contains(payload, "juana@example.com") {
		t.Fatalf("expected created user in response: %s", payload)
	}
}

func TestHealthEndpointsArePublic(t *testing.T) {
	router := newTestRouter(testConfig(), enums.UserStatusActive, enums.UserRoleUser)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig(), enums.UserStatusActive, enums.UserRoleUser)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/announcements", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestSessionRouteAllowsPendingAccounts(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, enums.UserStatusPendingApproval, enums.UserRoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for pending account on session route got %d", resp.Code)
	}
}

func TestApprovalGateBlocksPendingAccounts(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, enums.UserStatusPendingApproval, enums.UserRoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/announcements", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for pending account got %d", resp.Code)
	}
}

func TestApprovalGateAdmitsActiveAccounts(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, enums.UserStatusActive, enums.UserRoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/announcements", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for active account got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, enums.UserStatusActive, enums.UserRoleUser)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/approvals/", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	adminRouter := newTestRouter(cfg, enums.UserStatusActive, enums.UserRoleAdmin)
	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/approvals/", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	adminRouter.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}
