package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/verifly/verify_backend/repositories"
)

func TestSaveUserDetails_MissingFields(t *testing.T) {
	uc := NewUserController(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing phone", `{"name":"A","dob":"2000-01-01","gender":"F"}`},
		{"missing name", `{"phone":"5550001","dob":"2000-01-01","gender":"F"}`},
		{"missing dob", `{"phone":"5550001","name":"A","gender":"F"}`},
		{"missing gender", `{"phone":"5550001","name":"A","dob":"2000-01-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, uc.SaveUserDetails, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "Phone, name, dob and gender are required", resp.Message)
		})
	}
}

func TestSaveUserDetails_MalformedBody(t *testing.T) {
	uc := NewUserController(nil, nil)

	rec := postJSON(t, uc.SaveUserDetails, `{"phone"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestSaveUserDetails_Store(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unregistered phone is a 404 regardless of field validity", func(mt *mtest.T) {
		uc := NewUserController(mt.Client, repositories.NewUserRepository(mt.Client))

		// the update matches no document
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		rec := postJSON(mt.T, uc.SaveUserDetails, `{"phone":"5550099","name":"A","dob":"2000-01-01","gender":"F"}`)

		assert.Equal(mt.T, http.StatusNotFound, rec.Code)
		resp := decodeResponse(mt.T, rec)
		assert.False(mt.T, resp.Success)
		assert.Equal(mt.T, "User not found", resp.Message)
	})

	mt.Run("existing phone is updated", func(mt *mtest.T) {
		uc := NewUserController(mt.Client, repositories.NewUserRepository(mt.Client))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		rec := postJSON(mt.T, uc.SaveUserDetails, `{"phone":"5550001","name":"A","dob":"2000-01-01","gender":"F"}`)

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		resp := decodeResponse(mt.T, rec)
		assert.True(mt.T, resp.Success)
		assert.Equal(mt.T, "User details saved successfully", resp.Message)
	})

	mt.Run("store failure is a 500", func(mt *mtest.T) {
		uc := NewUserController(mt.Client, repositories.NewUserRepository(mt.Client))

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "shutdown in progress",
			Name:    "InterruptedAtShutdown",
		}))
		rec := postJSON(mt.T, uc.SaveUserDetails, `{"phone":"5550001","name":"A","dob":"2000-01-01","gender":"F"}`)

		assert.Equal(mt.T, http.StatusInternalServerError, rec.Code)
		assert.False(mt.T, decodeResponse(mt.T, rec).Success)
	})
}
