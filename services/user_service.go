package services

import (
	"errors"

	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/middleware"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUnknownUser and ErrWrongPassword both surface to clients as a
	// generic invalid-credentials error; only the audit log tells them apart.
	ErrUnknownUser         = errors.New("unknown username")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("current password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUserExists          = errors.New("username or email already exists")
	ErrInvalidRole         = errors.New("invalid role")
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrUnknownUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, "", ErrWrongPassword
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role, middleware.TokenLifetime)
	if err != nil {
		return user, "", err
	}

	return user, token, nil
}

func (s *UserService) GetByID(userID uint) (models.User, error) {
	user, err := s.repos.User.GetUserByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.repos.User.GetUserByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user.Password = string(hashed)
	return s.repos.User.SaveUser(&user)
}

func (s *UserService) CreateUser(input dto.CreateUserDTO) (models.User, error) {
	if !models.ValidRole(input.Role) {
		return models.User{}, ErrInvalidRole
	}

	taken, err := s.repos.User.UsernameOrEmailTaken(input.Username, input.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Role:     models.UserRole(input.Role),
	}

	if err := s.repos.User.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
