package controllers

import (
	"context"
	"net/http"

	"github.com/residensync/residensync-backend/api/responses"
	"github.com/residensync/residensync-backend/pkg/config"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Pinger is the readiness contract each backing store satisfies.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ResidenSync-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every backing store answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ResidenSync-Env", cfg.App.Env)

		var combined error
		for _, p := range pingers {
			if p == nil {
				continue
			}
			combined = multierr.Append(combined, p.Ping(r.Context()))
		}
		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependencies unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
