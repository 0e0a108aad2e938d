package middleware

import (
	"github.com/rs/cors"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// answering preflight OPTIONS requests for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
