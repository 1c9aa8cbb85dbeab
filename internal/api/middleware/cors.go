package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS builds the CORS policy for the API. X-User-ID is the header the
// frontend uses to pick the acting account, so it has to be allowed
// explicitly; Content-Disposition is exposed for the CSV download endpoints.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-ID"},
		ExposedHeaders:   []string{"Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
