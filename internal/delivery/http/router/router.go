// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AboutHandler      *handler.AboutHandler
	ContactHandler    *handler.ContactHandler
	ExperienceHandler *handler.ExperienceHandler
	ProjectHandler    *handler.ProjectHandler
	SkillHandler      *handler.SkillHandler
	ToolHandler       *handler.ToolHandler
	TrainingHandler   *handler.TrainingHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// resourceRoutes is the CRUD surface every portfolio resource exposes:
// public reads, authenticated writes.
type resourceRoutes struct {
	read   echo.HandlerFunc
	create echo.HandlerFunc
	update echo.HandlerFunc
	remove echo.HandlerFunc
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	r.registerResource(e, "/abouts", resourceRoutes{
		read:   r.params.AboutHandler.Get,
		create: r.params.AboutHandler.Create,
		update: r.params.AboutHandler.Update,
		remove: r.params.AboutHandler.Delete,
	})
	r.registerResource(e, "/contacts", resourceRoutes{
		read:   r.params.ContactHandler.Get,
		create: r.params.ContactHandler.Create,
		update: r.params.ContactHandler.Update,
		remove: r.params.ContactHandler.Delete,
	})
	r.registerResource(e, "/experiences", resourceRoutes{
		read:   r.params.ExperienceHandler.List,
		create: r.params.ExperienceHandler.Create,
		update: r.params.ExperienceHandler.Update,
		remove: r.params.ExperienceHandler.Delete,
	})
	r.registerResource(e, "/projects", resourceRoutes{
		read:   r.params.ProjectHandler.List,
		create: r.params.ProjectHandler.Create,
		update: r.params.ProjectHandler.Update,
		remove: r.params.ProjectHandler.Delete,
	})
	r.registerResource(e, "/skills", resourceRoutes{
		read:   r.params.SkillHandler.List,
		create: r.params.SkillHandler.Create,
		update: r.params.SkillHandler.Update,
		remove: r.params.SkillHandler.Delete,
	})
	r.registerResource(e, "/tools", resourceRoutes{
		read:   r.params.ToolHandler.List,
		create: r.params.ToolHandler.Create,
		update: r.params.ToolHandler.Update,
		remove: r.params.ToolHandler.Delete,
	})
	r.registerResource(e, "/trainings", resourceRoutes{
		read:   r.params.TrainingHandler.List,
		create: r.params.TrainingHandler.Create,
		update: r.params.TrainingHandler.Update,
		remove: r.params.TrainingHandler.Delete,
	})
}

func (r *router) registerResource(e *echo.Echo, prefix string, routes resourceRoutes) {
	group := e.Group(prefix)
	group.GET("/", routes.read)

	authenticate := r.params.AuthMiddleware.Authenticate
	group.POST("/create", routes.create, authenticate)
	group.PUT("/update/:id", routes.update, authenticate)
	group.DELETE("/delete/:id", routes.remove, authenticate)
}
