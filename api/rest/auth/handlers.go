package auth

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
	"golang.org/x/crypto/bcrypt"

	"github.com/studypilot/server/internal/auth"
	"github.com/studypilot/server/internal/errors"
	"github.com/studypilot/server/internal/logger"
	"github.com/studypilot/server/internal/mailer"
	"github.com/studypilot/server/studypilot/users"
)

const resetTokenLifetime = time.Hour

// creates a handler for password signup
func SignupHandler(userRepo *users.Repository, verifier *auth.Verifier, mail mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if _, err := userRepo.FindByEmail(c.Request.Context(), req.Email); err == nil {
			errors.Conflict(c, "an account with this email already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			errors.InternalError(c, "failed to create account", err)
			return
		}

		verificationToken := uuid.New().String()

		user, err := userRepo.CreateWithPassword(c.Request.Context(), users.CreateUserRequest{
			Email:             req.Email,
			Name:              req.Name,
			PasswordHash:      string(hash),
			ReferralCode:      newReferralCode(),
			VerificationToken: verificationToken,
		})

		if err != nil {
			errors.InternalError(c, "failed to create account", err)
			return
		}

		if err := mail.SendVerification(user.Email, verificationToken); err != nil {
			logger.ErrorErr(err, "failed to send verification email", "user_id", user.ID)
		}

		token, err := verifier.GenerateToken(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}

// creates a handler for password login
func LoginHandler(userRepo *users.Repository, verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			// same response as a wrong password, no account enumeration
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		if user.PasswordHash == "" {
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := verifier.GenerateToken(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
	}
}

// creates a handler that starts an OAuth flow with the named provider
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			errors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// creates a handler for the OAuth provider callback
func CallbackHandler(userRepo *users.Repository, verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		user, err := userRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
			newReferralCode(),
		)

		if err != nil {
			errors.InternalError(c, "failed to create user", err)
			return
		}

		token, err := verifier.GenerateToken(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
	}
}

// creates a handler that returns the authenticated user's profile
func GetCurrentUserHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// creates a handler that confirms an email verification token
func VerifyEmailHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyEmailRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := userRepo.VerifyEmail(c.Request.Context(), req.Token); err != nil {
			errors.BadRequest(c, "invalid verification token", nil)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "email verified"})
	}
}

// creates a handler that issues a password reset token. The response
// is identical whether or not the email has an account.
func ForgotPasswordHandler(userRepo *users.Repository, mail mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		token := uuid.New().String()
		expiresAt := time.Now().Add(resetTokenLifetime)

		err := userRepo.SetResetToken(c.Request.Context(), req.Email, token, expiresAt)
		if err == nil {
			if mailErr := mail.SendPasswordReset(req.Email, token); mailErr != nil {
				logger.ErrorErr(mailErr, "failed to send reset email")
			}
		} else if err != users.ErrUserNotFound {
			errors.InternalError(c, "failed to process request", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Message: "if an account exists for this email, a reset link has been sent",
		})
	}
}

// creates a handler that completes a password reset
func ResetPasswordHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			errors.InternalError(c, "failed to reset password", err)
			return
		}

		if err := userRepo.ResetPassword(c.Request.Context(), req.Token, string(hash)); err != nil {
			errors.BadRequest(c, "invalid or expired reset token", nil)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
	}
}

// creates a handler that clears the OAuth session
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear oauth session")
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

func isValidProvider(provider string) bool {
	validProviders := []string{"google", "github"}
	return slices.Contains(validProviders, provider)
}

func newReferralCode() string {
	return uuid.New().String()[:8]
}
