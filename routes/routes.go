package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/verifly/verify_backend/controllers"
)

// SetupRoutes sets up all verification routes
func SetupRoutes(e *echo.Echo, db *mongo.Client, otpController *controllers.OTPController, userController *controllers.UserController) {
	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Verifly Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx, nil); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "disconnected",
			})
		}

		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// OTP lifecycle routes
	e.POST("/send-otp", otpController.SendOTP)
	e.POST("/resend-otp", otpController.ResendOTP)
	e.POST("/verify-otp", otpController.VerifyOTP)

	// User profile routes
	e.POST("/save-user-details", userController.SaveUserDetails)
}
