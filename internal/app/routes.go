package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"Bluecroft/internal/ai"
	"Bluecroft/internal/audit"
	"Bluecroft/internal/auth"
	"Bluecroft/internal/cache"
	"Bluecroft/internal/config"
	"Bluecroft/internal/handlers"
	"Bluecroft/internal/repo"
	"Bluecroft/internal/reschedule"
	"Bluecroft/internal/service"
	"Bluecroft/internal/store"
)

// Setup wires the domain services and registers all routes.
func Setup(r *gin.Engine, cfg config.Config, log *logrus.Logger, db *pgxpool.Pool, rdb *redis.Client, advisor ai.Advisor) error {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	caseStore := store.New(time.Now)
	trail := audit.New("Case Manager", time.Now)
	caseRepo := repo.NewPGCaseRepo(db)
	caseSvc := service.NewCaseService(caseStore, trail, caseRepo, log)
	if err := caseSvc.Restore(context.Background()); err != nil {
		return err
	}

	valuations := cache.NewValuationCache(rdb, cfg.Redis.ValuationTTL.Duration())
	advisorSvc := service.NewAdvisorService(advisor, caseStore, trail, valuations, cfg.Gemini.Timeout.Duration(), log)
	ctrl := reschedule.New(caseSvc)

	protected := api.Group("", auth.RequireSession(sessionStore))
	registerCaseRoutes(protected, handlers.NewCaseHandler(caseSvc))
	registerAdvisorRoutes(protected, handlers.NewAdvisorHandler(advisorSvc))
	registerCalendarRoutes(protected, handlers.NewCalendarHandler(caseSvc, ctrl))
	registerExportRoutes(protected, handlers.NewExportHandler(caseSvc, trail, time.Now))
	registerAuditRoutes(protected, handlers.NewAuditHandler(trail))
	return nil
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Bluecroft Underwriting API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerCaseRoutes(api *gin.RouterGroup, h *handlers.CaseHandler) {
	api.GET("/cases", h.List)
	api.POST("/cases", h.Save)
	api.POST("/cases/sample", h.LoadSample)
	api.PATCH("/cases/current", h.UpdateDraft)
	api.GET("/cases/:id", h.Get)
	api.DELETE("/cases/:id", h.Delete)
	api.POST("/cases/:id/tasks", h.AddTask)
	api.POST("/cases/:id/tasks/toggle", h.ToggleTask)
}

func registerAdvisorRoutes(api *gin.RouterGroup, h *handlers.AdvisorHandler) {
	api.POST("/cases/analyze", h.Analyze)
	api.POST("/documents/parse", h.ParseDocuments)
	api.GET("/valuation", h.Valuation)
	api.POST("/chat", h.Chat)
}

func registerCalendarRoutes(api *gin.RouterGroup, h *handlers.CalendarHandler) {
	api.GET("/calendar/month", h.Month)
	api.GET("/calendar/day", h.Day)
	api.POST("/calendar/drop", h.Drop)
	api.GET("/reschedule", h.RescheduleState)
	api.POST("/reschedule/case", h.StartCaseReschedule)
	api.POST("/reschedule/task", h.StartTaskReschedule)
	api.POST("/reschedule/cancel", h.CancelReschedule)
	api.POST("/reschedule/confirm", h.ConfirmReschedule)
}

func registerExportRoutes(api *gin.RouterGroup, h *handlers.ExportHandler) {
	api.GET("/cases/:id/export/pdf", h.CasePDF)
	api.POST("/letters", h.Letter)
	api.POST("/calendar/events", h.CalendarEvent)
}

func registerAuditRoutes(api *gin.RouterGroup, h *handlers.AuditHandler) {
	api.GET("/audit", h.List)
}
