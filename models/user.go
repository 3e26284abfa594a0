// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Phone       string             `json:"phone" bson:"phone"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	DateOfBirth string             `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Request models
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type SaveUserDetailsRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Name   string `json:"name" validate:"required"`
	DOB    string `json:"dob" validate:"required"`
	Gender string `json:"gender" validate:"required"`
}

// Response model
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OTPResponse carries the generated code back to the caller. There is no
// delivery channel, the code rides in the send/resend response itself.
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTP     string `json:"otp"`
}
