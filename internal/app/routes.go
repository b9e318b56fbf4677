package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/clairecicle/Mental-load-app/internal/auth"
	"github.com/clairecicle/Mental-load-app/internal/cache"
	"github.com/clairecicle/Mental-load-app/internal/config"
	"github.com/clairecicle/Mental-load-app/internal/handlers"
	"github.com/clairecicle/Mental-load-app/internal/notify"
	"github.com/clairecicle/Mental-load-app/internal/repo"
	"github.com/clairecicle/Mental-load-app/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, store repo.Store, rdb *redis.Client, scanner *notify.Scanner) {
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
	userSvc := service.NewUserService(store.Users, store.Households)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	pushHandler := handlers.NewPushHandler(store.Subscriptions, scanner, cfg.Push.VAPIDPublicKey)
	api.GET("/push/public-key", pushHandler.PublicKey)
	api.POST("/push/subscribe", pushHandler.Subscribe)
	api.GET("/cron/check-due-tasks", pushHandler.CheckDueTasks)

	protected := api.Group("", auth.RequireSession(sessionStore))
	protected.GET("/auth/me", authHandler.Me)
	protected.GET("/users", authHandler.Members)

	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(store.Tasks, taskCache)
	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc))

	registerDomainRoutes(protected, handlers.NewDomainHandler(service.NewDomainService(store.Domains)))
	registerDiscussionRoutes(protected, handlers.NewDiscussionHandler(service.NewDiscussionService(store.Discussions)))
	registerShoppingRoutes(protected, handlers.NewShoppingHandler(service.NewShoppingService(store.Shopping)))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Mental Load API",
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

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/today", h.Today)
	api.GET("/tasks/today/grouped", h.TodayGrouped)
	api.GET("/tasks/upcoming", h.Upcoming)
	api.GET("/tasks/overdue", h.Overdue)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)
	api.POST("/tasks/:id/reopen", h.Reopen)
}

func registerDomainRoutes(api *gin.RouterGroup, h *handlers.DomainHandler) {
	api.POST("/domains", h.Create)
	api.GET("/domains", h.List)
	api.GET("/domains/:id", h.GetByID)
	api.PATCH("/domains/:id", h.Update)
	api.DELETE("/domains/:id", h.Delete)
}

func registerDiscussionRoutes(api *gin.RouterGroup, h *handlers.DiscussionHandler) {
	api.POST("/discussions", h.Create)
	api.GET("/discussions", h.List)
	api.PATCH("/discussions/:id", h.Update)
	api.DELETE("/discussions/:id", h.Delete)
	api.POST("/discussions/:id/resolve", h.Resolve)
	api.POST("/discussions/:id/reopen", h.Reopen)
}

func registerShoppingRoutes(api *gin.RouterGroup, h *handlers.ShoppingHandler) {
	api.POST("/shopping", h.Create)
	api.GET("/shopping", h.List)
	api.PATCH("/shopping/:id", h.Update)
	api.DELETE("/shopping/:id", h.Delete)
	api.POST("/shopping/:id/purchase", h.SetPurchased)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
