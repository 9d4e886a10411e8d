// Package https_server builds the configured gin engine: middleware chain,
// CORS rules, static upload serving and route registration.
package https_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/config"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/handler"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/logger"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/router"
)

// Init builds the gin engine with the full middleware chain and every
// route registered. The caller owns running it.
func Init(conf *config.Config, handlers *handler.Handlers) *gin.Engine {
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Blank engine so the middleware chain is fully ours.
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = conf.CorsConfig.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	// Optional redirect for deployments that terminate TLS in-process.
	if conf.MainConfig.TLSRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.TLSRedirectHost))
	}

	// Serve stored uploads (profile photos, payment proofs).
	engine.Static(conf.StorageConfig.BaseURL, conf.StorageConfig.UploadPath)

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
