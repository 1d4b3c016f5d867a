package routes

import (
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/security"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/handler"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers wired into the router
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Image   *handler.ImageHandler
	Payment *handler.PaymentHandler
	Admin   *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	tokens security.TokenIssuer,
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) {
	// Public auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
		authRoutes.POST("/google", handlers.Auth.LoginWithIdentity)
	}

	// Webhook route stays public; the provider authenticates by signature,
	// not by session token
	router.POST("/payment/webhook", handlers.Payment.Webhook)

	authenticated := router.Group("/", middleware.RequireAuth(tokens, logger))
	{
		authenticated.GET("/user/me", handlers.User.Me)
		authenticated.GET("/user/transactions", handlers.User.History)

		authenticated.POST("/payment/checkout", handlers.Payment.Checkout)

		aiRoutes := authenticated.Group("/ai")
		{
			aiRoutes.POST("/generate", handlers.Image.Generate)
			aiRoutes.POST("/edit", handlers.Image.Edit)
			aiRoutes.POST("/variation", handlers.Image.Variation)
		}
	}

	adminRoutes := router.Group("/admin",
		middleware.RequireAuth(tokens, logger),
		middleware.RequireAdmin(userRepo, logger),
	)
	{
		adminRoutes.GET("/users", handlers.Admin.ListUsers)
		adminRoutes.GET("/stats", handlers.Admin.Stats)
		adminRoutes.DELETE("/users/:id", handlers.Admin.DeleteUser)
		adminRoutes.PATCH("/users/:id/role", handlers.Admin.UpdateRole)
		adminRoutes.POST("/users/:id/gift", handlers.Admin.GiftCredits)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
