package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/residensync/residensync-backend/pkg/config"
)

// CORS returns middleware that applies the API's allowed origin policy. The
// defaults cover Expo dev servers; production origins come from config.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-RS-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-RS-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
