package route

import (
	"github.com/gin-gonic/gin"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/adapter/api/controller"
	"github.com/shah-dhwanil/gaatha-salesforce-sub000/pkg/auth"
)

// SetupAuthRoutes wires registration, login and token endpoints
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// Refresh takes the old token in the body, no auth header needed
		authRouter.POST("/refresh", authController.Refresh)

		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
