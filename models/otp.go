package models

import (
	"time"
)

// PhoneOTP represents the live verification code for a phone number.
// At most one document exists per phone; send/resend overwrite it and a
// successful verification deletes it. No expiry is tracked.
type PhoneOTP struct {
	Phone     string    `bson:"phone"`
	OTP       string    `bson:"otp"`
	CreatedAt time.Time `bson:"createdAt"`
}
