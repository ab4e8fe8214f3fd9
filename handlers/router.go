package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/seosites/seosites/backend/go-api/pkg/middleware"
)

// NewRouter builds the engine with every API route mounted.
func NewRouter(a *app.App) *gin.Engine {
	cfg := a.Config
	r := gin.New()
	r.Use(gin.Recovery(), AccessLog())

	cc := cors.DefaultConfig()
	cc.AllowOrigins = cfg.CORS.AllowedOrigins
	cc.AllowCredentials = true
	cc.AddAllowHeaders("Authorization")
	if len(cc.AllowOrigins) == 0 {
		cc.AllowOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cc), ErrorResponder())

	r.GET("/ready", Ready(a, a.Storage))
	RegisterSwagger(r)

	uploads := NewUploadHandler(a.Uploader, a.Files)
	r.GET("/uploads/:name", uploads.Serve)
	r.HEAD("/uploads/:name", uploads.Serve)
	r.NoRoute(NotFoundRoute)

	api := r.Group("/api")
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && a.Redis != nil {
			api.Use(middleware.RedisRateLimitMiddleware(a.Redis, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
		} else {
			if cfg.RateLimit.UseRedis {
				logger.Warn("RATE_LIMIT_USE_REDIS set but Redis is unavailable; using in-memory limiter")
			}
			api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS(), cfg.RateLimit.MaxRequests))
		}
	}
	api.GET("/health", Health)

	var (
		public  []gin.HandlerFunc
		writers = []gin.HandlerFunc{middleware.Require(a.Tokens, models.RoleAdmin, models.RoleEditor)}
		admins  = []gin.HandlerFunc{middleware.Require(a.Tokens, models.RoleAdmin)}
	)

	NewAuthHandler(a.Admins).Register(api, middleware.AuthMiddleware(a.Tokens), admins[0])

	projects := NewProjectHandler(a.Projects)
	pg := api.Group("/projects")
	pg.GET("", projects.List)
	pg.GET("/featured", projects.Featured)
	pg.GET("/:id", projects.Get)
	pg.POST("", chain(writers, projects.Create)...)
	pg.PUT("/:id", chain(writers, projects.Update)...)
	pg.DELETE("/:id", chain(admins, projects.Delete)...)

	newResource(a.Services, "Service deleted successfully").register(api.Group("/services"), public, writers, admins)

	techs := NewTechnologyHandler(a.Technologies)
	tg := api.Group("/technologies")
	tg.GET("", techs.List)
	tg.GET("/:id", techs.Get)
	tg.POST("", chain(writers, techs.Create)...)
	tg.PUT("/:id", chain(writers, techs.Update)...)
	tg.DELETE("/:id", chain(admins, techs.Delete)...)

	testimonials := NewTestimonialHandler(a.Testimonials)
	tsg := api.Group("/testimonials")
	tsg.GET("/featured", testimonials.Featured)
	testimonials.register(tsg, public, writers, admins)

	stats := NewStatHandler(a.Stats)
	sg := api.Group("/stats")
	sg.GET("/page/:page", stats.ByPage)
	stats.register(sg, public, admins, admins)

	hero := NewHeroHandler(a.HeroContents)
	hg := api.Group("/hero-content")
	hg.GET("/page/:page", hero.ByPage)
	hero.register(hg, public, admins, admins)

	company := NewCompanyHandler(a.Company)
	api.GET("/company-info", company.Get)
	api.PUT("/company-info", chain(admins, company.Update)...)

	newResource(a.ProcessSteps, "").register(api.Group("/process-steps"), public, admins, admins)

	ug := api.Group("/upload", writers...)
	ug.POST("", uploads.Upload)
	ug.DELETE("/:filename", uploads.Delete)

	return r
}
