package user

import (
	"strings"

	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser registers a new user. Usernames are unique and immutable.
func (u *UserService) CreateUser(request *UserRequest) (*UserResponse, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" {
		return nil, apperrors.NewAppError(400, "username is required", nil)
	}
	if request.DisplayName == "" {
		return nil, apperrors.NewAppError(400, "displayName is required", nil)
	}

	created, err := u.repo.CreateUser(username, request.DisplayName, request.Email)
	if err != nil {
		return nil, err
	}

	response := created.ToResponse()
	return &response, nil
}

// GetUsers returns all users sorted by username.
func (u *UserService) GetUsers() ([]UserResponse, error) {
	users, err := u.repo.GetUsers()
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, usr := range users {
		responses = append(responses, usr.ToResponse())
	}

	return responses, nil
}
