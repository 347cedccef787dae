package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/residensync/residensync-backend/api/controllers"
	"github.com/residensync/residensync-backend/api/middleware"
	"github.com/residensync/residensync-backend/internal/approvals"
	"github.com/residensync/residensync-backend/internal/auth"
	"github.com/residensync/residensync-backend/internal/docrequests"
	"github.com/residensync/residensync-backend/internal/lostfound"
	"github.com/residensync/residensync-backend/internal/pets"
	"github.com/residensync/residensync-backend/internal/posts"
	"github.com/residensync/residensync-backend/internal/users"
	"github.com/residensync/residensync-backend/pkg/auth/session"
	"github.com/residensync/residensync-backend/pkg/config"
	"github.com/residensync/residensync-backend/pkg/enums"
	"github.com/residensync/residensync-backend/pkg/logger"
	"github.com/residensync/residensync-backend/pkg/metrics"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService     auth.Service
	RegisterService auth.RegisterService
	UserService     users.Service
	ApprovalService approvals.Service
	PostService     posts.Service
	LostFoundSvc    lostfound.Service
	DocRequestSvc   docrequests.Service
	PetService      pets.Service
}

// NewRouter assembles the full route tree. Three rings of access: public
// (health, metrics, auth), authenticated-any-status (the session gate), and
// authenticated-plus-approved (the resident API, with an admin group inside).
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if p.HTTPMetrics != nil {
		r.Use(middleware.Metrics(p.HTTPMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisPinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(p.RegisterService, logg))
		r.Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		// The gate itself stays reachable for pending and rejected accounts.
		r.Get("/v1/session", controllers.SessionSnapshot(p.UserService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireApproved(p.UserService, logg))

			r.Route("/v1", func(r chi.Router) {
				r.Get("/me", controllers.ProfileMe(p.UserService, logg))

				r.Get("/announcements", controllers.ListAnnouncements(p.PostService, logg))
				r.Get("/schedule", controllers.ListSchedule(p.PostService, logg))

				r.Route("/lost-found", func(r chi.Router) {
					r.Get("/", controllers.ListLostFound(p.LostFoundSvc, logg))
					r.Post("/", controllers.CreateLostFound(p.LostFoundSvc, logg))
				})

				r.Route("/document-requests", func(r chi.Router) {
					r.Get("/", controllers.ListMyDocumentRequests(p.DocRequestSvc, logg))
					r.Post("/", controllers.CreateDocumentRequest(p.DocRequestSvc, logg))
				})

				r.Route("/pets", func(r chi.Router) {
					r.Get("/", controllers.ListMyPets(p.PetService, logg))
					r.Post("/", controllers.CreatePet(p.PetService, logg))
					r.Get("/{petID}", controllers.GetPet(p.PetService, logg))
					r.Patch("/{petID}", controllers.UpdatePet(p.PetService, logg))
					r.Delete("/{petID}", controllers.DeletePet(p.PetService, logg))
				})
			})

			r.Route("/admin/v1", func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

				r.Route("/approvals", func(r chi.Router) {
					r.Get("/", controllers.AdminListPendingUsers(p.ApprovalService, logg))
					r.Post("/{userID}/approve", controllers.AdminApproveUser(p.ApprovalService, logg))
					r.Post("/{userID}/reject", controllers.AdminRejectUser(p.ApprovalService, logg))
				})

				r.Post("/posts", controllers.AdminCreatePost(p.PostService, logg))
				r.Post("/lost-found/{itemID}/status", controllers.AdminUpdateLostFoundStatus(p.LostFoundSvc, logg))

				r.Route("/document-requests", func(r chi.Router) {
					r.Get("/", controllers.AdminListDocumentRequests(p.DocRequestSvc, logg))
					r.Post("/{requestID}/status", controllers.AdminUpdateDocumentRequestStatus(p.DocRequestSvc, logg))
				})
			})
		})
	})

	return r
}
