package server

import (
	"time"

	"sttm-catalog-api/internal/assist"
	"sttm-catalog-api/internal/catalog"
	"sttm-catalog-api/internal/export"
	"sttm-catalog-api/internal/health"
	"sttm-catalog-api/internal/logs"
	"sttm-catalog-api/internal/mapping"
	"sttm-catalog-api/internal/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	r.Use(cors.New(corsConfig(app.Config.AllowedOrigins())))

	health.RegisterRoutes(r, app.DB)
	catalog.RegisterRoutes(r, app.Catalog)
	mapping.RegisterRoutes(r, app.Mappings, app.Logs)
	export.RegisterRoutes(r, app.Export, app.Logs)
	assist.RegisterRoutes(r, app.Assist, app.Logs)
	logs.RegisterRoutes(r, app.Logs)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
