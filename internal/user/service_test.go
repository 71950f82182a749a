package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
)

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: 1, Username: "alice", DisplayName: "Alice", Email: "alice@example.com"}
	mockRepo.On("CreateUser", "alice", "Alice", "alice@example.com").Return(created, nil)

	resp, err := service.CreateUser(&UserRequest{
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.DisplayName)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	conflict := apperrors.NewAppError(409, "A User with that name already exists!", nil)
	mockRepo.On("CreateUser", "alice", "Alice Again", "").Return(nil, conflict)

	_, err := service.CreateUser(&UserRequest{Username: "alice", DisplayName: "Alice Again"})
	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_MissingUsername(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.CreateUser(&UserRequest{Username: "  ", DisplayName: "Nobody"})
	assert.Error(t, err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_GetUsers(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetUsers").Return([]User{
		{Username: "alice", DisplayName: "Alice"},
		{Username: "bob", DisplayName: "Bob"},
	}, nil)

	users, err := service.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	mockRepo.AssertExpectations(t)
}
