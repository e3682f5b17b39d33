package services

import (
	"errors"
	"log"
	"unicode/utf8"

	"gorm.io/gorm"

	"dormwatch/config"
	"dormwatch/db"
	apiError "dormwatch/errors"
	"dormwatch/models"
)

// AuthService interface
type AuthService interface {
	SignupUser(request *models.SignupRequest) (*models.User, *apiError.Error)
	LoginUser(request *models.LoginRequest) (*models.User, *apiError.Error)
	GetUserByID(userID uint) (*models.User, error)
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (a *authService) SignupUser(request *models.SignupRequest) (*models.User, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(request); err != nil {
		log.Printf("SignupUser error trimming input: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Username == "" || request.Password == "" {
		return nil, apiError.InvalidInput("username and password required")
	}
	if utf8.RuneCountInString(request.Username) > 80 || models.ValidatePassword(request.Password) != nil {
		return nil, apiError.InvalidInput("invalid username or password length")
	}

	exists, err := a.authRepo.IsUsernameExist(request.Username)
	if err != nil {
		log.Printf("SignupUser error checking username: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if exists {
		return nil, apiError.ErrUsernameTaken
	}

	user := &models.User{Username: request.Username}
	if err := user.SetPassword(request.Password); err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	user, err = a.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return user, nil
}

// LoginUser verifies the credentials. The failure is uniform on purpose: a
// caller cannot distinguish an unknown username from a wrong password.
func (a *authService) LoginUser(request *models.LoginRequest) (*models.User, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(request); err != nil {
		log.Printf("LoginUser error trimming input: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Username == "" || request.Password == "" {
		return nil, apiError.InvalidInput("username and password required")
	}

	foundUser, err := a.authRepo.FindUserByUsername(request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrInvalidCredentials
		}
		log.Printf("LoginUser error finding user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := foundUser.VerifyPassword(request.Password); err != nil {
		return nil, apiError.ErrInvalidCredentials
	}

	return foundUser, nil
}

func (a *authService) GetUserByID(userID uint) (*models.User, error) {
	return a.authRepo.FindUserByID(userID)
}
