package controllers

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/verifly/verify_backend/models"
	"github.com/verifly/verify_backend/repositories"
	"github.com/verifly/verify_backend/utils"
)

// UserController contains user profile logic
type UserController struct {
	DB       *mongo.Client
	userRepo *repositories.UserRepository
	logger   *log.Logger
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client, userRepo *repositories.UserRepository) *UserController {
	return &UserController{
		DB:       db,
		userRepo: userRepo,
		logger:   log.New(os.Stdout, "[USER] ", log.LstdFlags),
	}
}

// SaveUserDetails fills in the profile fields on an existing user document.
// It does not consult OTP state, the endpoint stands on its own.
func (uc *UserController) SaveUserDetails(c echo.Context) error {
	var req models.SaveUserDetailsRequest

	if err := c.Bind(&req); err != nil {
		uc.logger.Printf("Save user details bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request",
		})
	}

	req.Phone = utils.SanitizeInput(req.Phone)
	req.Name = utils.SanitizeInput(req.Name)
	req.DOB = utils.SanitizeInput(req.DOB)
	req.Gender = utils.SanitizeInput(req.Gender)

	if req.Phone == "" || req.Name == "" || req.DOB == "" || req.Gender == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Phone, name, dob and gender are required",
		})
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    err.Error(),
		})
	}

	matched, err := uc.userRepo.UpdateDetails(context.Background(), req.Phone, req.Name, req.DOB, req.Gender)
	if err != nil {
		uc.logger.Printf("Failed to update user details for phone %s: %v", req.Phone, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Database error",
		})
	}

	if matched == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User details saved successfully",
	})
}
