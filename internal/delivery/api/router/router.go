// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"livewell/config"
	"livewell/internal/delivery/api/middleware"
	"livewell/internal/delivery/api/router/handler"
	"livewell/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// schemes lists the route suffixes; each selects the token scheme of its routes.
var schemes = []entity.Scheme{entity.SchemeFederated, entity.SchemeFirstParty}

type RouterParams struct {
	fx.In

	ChatHandler    *handler.ChatHandler
	DeviceHandler  *handler.DeviceHandler
	GoalHandler    *handler.GoalHandler
	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	chatHandler    *handler.ChatHandler
	deviceHandler  *handler.DeviceHandler
	goalHandler    *handler.GoalHandler
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		chatHandler:    params.ChatHandler,
		deviceHandler:  params.DeviceHandler,
		goalHandler:    params.GoalHandler,
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	api.POST("/auth/google", r.authHandler.GoogleSignIn)

	// Every protected route exists once per scheme; the suffix picks the verifier.
	for _, scheme := range schemes {
		suffix := "/" + string(scheme)
		auth := r.authMiddleware.Authenticate(scheme)

		api.POST("/chatbot"+suffix, r.chatHandler.Chat, auth)

		api.POST("/fcm-noti/register-device"+suffix, r.deviceHandler.RegisterDevice, auth)
		api.POST("/fcm-noti/unregister-device"+suffix, r.deviceHandler.UnregisterDevice, auth)

		api.GET("/goal/recommendation"+suffix, r.goalHandler.ListRecommendations, auth)
		api.PUT("/goal/recommendation"+suffix+"/:recommend_id", r.goalHandler.SetAlreadySet, auth)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	for _, scheme := range schemes {
		testGroup.GET("/auth/"+string(scheme), r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate(scheme))
	}

	adminGroup := e.Group("/api/admin/recommendations", r.authMiddleware.Authenticate(entity.SchemeFirstParty))
	{
		adminGroup.POST("/generate", r.adminHandler.GenerateRecommendations)
		adminGroup.POST("/send", r.adminHandler.SendRecommendations)
	}
}
