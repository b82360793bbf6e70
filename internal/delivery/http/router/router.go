// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"indieneer/internal/delivery/http/middleware"
	"indieneer/internal/delivery/http/router/handler"
	"indieneer/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler        *handler.HealthHandler
	ProfileHandler       *handler.ProfileHandler
	LoginHandler         *handler.LoginHandler
	BackgroundJobHandler *handler.BackgroundJobHandler
	CatalogHandler       *handler.CatalogHandler
	FeaturedListHandler  *handler.FeaturedListHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	health        *handler.HealthHandler
	profile       *handler.ProfileHandler
	login         *handler.LoginHandler
	backgroundJob *handler.BackgroundJobHandler
	catalog       *handler.CatalogHandler
	featuredList  *handler.FeaturedListHandler
	auth          *middleware.AuthMiddleware
	rateLimit     *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		health:        params.HealthHandler,
		profile:       params.ProfileHandler,
		login:         params.LoginHandler,
		backgroundJob: params.BackgroundJobHandler,
		catalog:       params.CatalogHandler,
		featuredList:  params.FeaturedListHandler,
		auth:          params.AuthMiddleware,
		rateLimit:     params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", r.rateLimit.Handle)
	v2 := e.Group("/v2", r.rateLimit.Handle)

	// Public routes
	v1.GET("/health", r.health.Health)
	v1.POST("/profiles", r.profile.Create)
	v1.POST("/logins", r.login.Login)
	v1.POST("/logins/m2m", r.login.LoginM2M)
	v1.POST("/logins/refresh_tokens", r.login.Refresh)
	v1.GET("/products/:slug", r.catalog.GetProduct)
	v1.GET("/tags", r.catalog.ListTags)
	v1.GET("/genres", r.catalog.ListTags)
	v1.GET("/platforms", r.catalog.ListPlatforms)

	v2.POST("/profiles", r.profile.CreateV2)
	v2.POST("/logins", r.login.LoginV2)

	// Authenticated user routes
	profiles := v1.Group("/profiles", r.auth.Authenticate)
	{
		profiles.GET("/me", r.profile.Me)
		profiles.GET("/:id", r.profile.Get)
		profiles.PATCH("/:id", r.profile.Update)
		profiles.DELETE("/:id", r.profile.Delete)
	}

	// Service account routes
	jobs := v1.Group("/background_jobs", r.auth.Authenticate, r.auth.RequireServiceAccount)
	{
		jobs.GET("", r.backgroundJob.List)
		jobs.POST("", r.backgroundJob.Create)
		jobs.GET("/:id", r.backgroundJob.Get)
		jobs.PATCH("/:id", r.backgroundJob.Patch)
		jobs.DELETE("/:id", r.backgroundJob.Delete)
		jobs.POST("/:id/events", r.backgroundJob.AddEvent)
	}

	// Admin routes
	admin := v1.Group("/admin", r.auth.Authenticate, r.auth.RequireRole(entity.RoleAdmin))
	r.registerAdminRoutes(admin)
}

func (r *router) registerAdminRoutes(admin *echo.Group) {
	profiles := admin.Group("/profiles")
	{
		profiles.GET("", r.profile.List)
		profiles.POST("", r.profile.AdminCreate)
		profiles.GET("/:id", r.profile.AdminGet)
		profiles.PATCH("/:id", r.profile.AdminUpdate)
		profiles.DELETE("/:id", r.profile.AdminDelete)
		profiles.PUT("/:id/roles", r.profile.SetRoles)
	}

	admin.POST("/service_profiles", r.profile.CreateServiceProfile)

	tags := admin.Group("/tags")
	{
		tags.GET("", r.catalog.ListTags)
		tags.POST("", r.catalog.CreateTag)
		tags.GET("/:id", r.catalog.GetTag)
		tags.PATCH("/:id", r.catalog.UpdateTag)
		tags.DELETE("/:id", r.catalog.DeleteTag)
	}

	featured := admin.Group("/cms/popular_on_steam")
	{
		featured.GET("", r.featuredList.List)
		featured.POST("", r.featuredList.Create)
		featured.GET("/:id", r.featuredList.Get)
		featured.PATCH("/:id", r.featuredList.Patch)
		featured.DELETE("/:id", r.featuredList.Delete)
	}
}
