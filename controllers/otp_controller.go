package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/verifly/verify_backend/config"
	"github.com/verifly/verify_backend/models"
	"github.com/verifly/verify_backend/utils"
)

// OTPController contains the OTP issuance and verification logic
type OTPController struct {
	DB     *mongo.Client
	logger *log.Logger
}

// NewOTPController creates a new OTP controller
func NewOTPController(db *mongo.Client) *OTPController {
	return &OTPController{
		DB:     db,
		logger: log.New(os.Stdout, "[OTP] ", log.LstdFlags),
	}
}

// SendOTP generates a fresh OTP for the phone number and stores it.
// A user document is created for the phone if one does not exist yet.
func (oc *OTPController) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest

	if err := c.Bind(&req); err != nil {
		oc.logger.Printf("Send OTP bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request",
		})
	}

	req.Phone = utils.SanitizeInput(req.Phone)
	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Phone number is required",
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure a user exists for this phone number
	userCollection := config.GetCollection(oc.DB, "users")
	_, err := userCollection.UpdateOne(
		ctx,
		bson.M{"phone": req.Phone},
		bson.M{"$setOnInsert": bson.M{
			"phone":     req.Phone,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		oc.logger.Printf("Failed to upsert user for phone %s: %v", req.Phone, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Database error",
		})
	}

	otp, err := oc.issueOTP(ctx, req.Phone)
	if err != nil {
		oc.logger.Printf("Failed to store OTP for phone %s: %v", req.Phone, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to generate OTP",
		})
	}

	oc.logger.Printf("Generated OTP for phone: %s", req.Phone)

	return c.JSON(http.StatusOK, models.OTPResponse{
		Success: true,
		Message: "OTP sent successfully",
		OTP:     otp,
	})
}

// ResendOTP overwrites the stored OTP with a fresh code. Unlike SendOTP it
// does not touch the users collection, repeated calls simply replace the code.
func (oc *OTPController) ResendOTP(c echo.Context) error {
	var req models.SendOTPRequest

	if err := c.Bind(&req); err != nil {
		oc.logger.Printf("Resend OTP bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request",
		})
	}

	req.Phone = utils.SanitizeInput(req.Phone)
	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Phone number is required",
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	otp, err := oc.issueOTP(ctx, req.Phone)
	if err != nil {
		oc.logger.Printf("Failed to store OTP for phone %s: %v", req.Phone, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to resend OTP",
		})
	}

	oc.logger.Printf("Resent OTP for phone: %s", req.Phone)

	return c.JSON(http.StatusOK, models.OTPResponse{
		Success: true,
		Message: "OTP resent successfully",
		OTP:     otp,
	})
}

// issueOTP generates a new code and upserts the phone_otps document for the
// phone, replacing any previous code. Last write wins when sends race.
func (oc *OTPController) issueOTP(ctx context.Context, phone string) (string, error) {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	otpCollection := config.GetCollection(oc.DB, "phone_otps")
	_, err = otpCollection.UpdateOne(
		ctx,
		bson.M{"phone": phone},
		bson.M{"$set": bson.M{
			"otp":       otp,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", err
	}

	return otp, nil
}

// VerifyOTP checks the submitted code against the stored one and consumes
// the record on a match. A mismatch leaves the record in place.
func (oc *OTPController) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest

	if err := c.Bind(&req); err != nil {
		oc.logger.Printf("OTP verification bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request",
		})
	}

	// Sanitize inputs
	req.Phone = utils.SanitizeInput(req.Phone)
	req.OTP = utils.SanitizeInput(req.OTP)

	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Phone number is required for OTP verification",
		})
	}

	if req.OTP == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "OTP is required",
		})
	}

	// Validate request, the code is always exactly six digits
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed",
			Data:    err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	otpCollection := config.GetCollection(oc.DB, "phone_otps")

	oc.logger.Printf("Verifying OTP for phone: %s", req.Phone)

	// Find the OTP document by phone only so a missing record and a wrong
	// code can be told apart
	var otpDoc models.PhoneOTP
	err := otpCollection.FindOne(ctx, bson.M{"phone": req.Phone}).Decode(&otpDoc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			oc.logger.Printf("No OTP record for phone: %s", req.Phone)
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "No OTP found for this phone number",
			})
		}
		oc.logger.Printf("Database error during OTP verification: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Database error",
		})
	}

	if otpDoc.OTP != req.OTP {
		oc.logger.Printf("Invalid OTP for phone: %s", req.Phone)
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid OTP",
		})
	}

	// Single-use: consume the record so the same code cannot verify twice
	_, err = otpCollection.DeleteOne(ctx, bson.M{"phone": req.Phone})
	if err != nil {
		oc.logger.Printf("Failed to delete OTP for phone %s: %v", req.Phone, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Database error",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "OTP verified successfully",
	})
}
