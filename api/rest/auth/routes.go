package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/mailer"
	"github.com/studypilot/server/studypilot/users"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository, verifier *auth.Verifier, mail mailer.Mailer) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", SignupHandler(userRepo, verifier, mail))
		authGroup.POST("/login", LoginHandler(userRepo, verifier))
		authGroup.POST("/verify", VerifyEmailHandler(userRepo))
		authGroup.POST("/forgot-password", ForgotPasswordHandler(userRepo, mail))
		authGroup.POST("/reset-password", ResetPasswordHandler(userRepo))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.Middleware(verifier), GetCurrentUserHandler(userRepo))
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(userRepo, verifier))
	}
}
