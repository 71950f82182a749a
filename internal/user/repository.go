package user

import (
	"errors"

	"github.com/thesrcielos/RockPaperScissors/internal/apperrors"
	"github.com/thesrcielos/RockPaperScissors/pkg/db"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, displayName, email string) (*User, error)
	GetUser(id uint) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUsers() ([]User, error)
	SaveUser(u *User) error
}

type GormUserRepository struct{}

func NewGormUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(username, displayName, email string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ?", username).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewAppError(409, "A User with that name already exists!", nil)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(500, "error checking username", result.Error)
	}

	newUser := User{
		Username:    username,
		DisplayName: displayName,
		Email:       email,
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}

	return &newUser, nil
}

func (r *GormUserRepository) GetUser(id uint) (*User, error) {
	var u User
	result := db.DB.First(&u, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting user", result.Error)
	}

	return &u, nil
}

func (r *GormUserRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	result := db.DB.Where("username = ?", username).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting user", result.Error)
	}

	return &u, nil
}

func (r *GormUserRepository) GetUsers() ([]User, error) {
	var users []User
	if err := db.DB.Order("username ASC").Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing users", err)
	}

	return users, nil
}

func (r *GormUserRepository) SaveUser(u *User) error {
	if err := db.DB.Save(u).Error; err != nil {
		return apperrors.NewAppError(500, "error saving user", err)
	}

	return nil
}
