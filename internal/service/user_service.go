package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/repository"
	"pixelpaw/backend/pkg/jwt"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService handles account signup and login.
type UserService struct {
	repo repository.UserRepository
	jwt  *jwt.Service
}

func NewUserService(repo repository.UserRepository, jwtService *jwt.Service) *UserService {
	return &UserService{repo: repo, jwt: jwtService}
}

// CreateUser registers a new account and returns it with a fresh token.
func (s *UserService) CreateUser(req *models.CreateUserRequest) (*models.User, string, error) {
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password.
func (s *UserService) Login(req *models.LoginRequest) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !models.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC()
	if err := s.repo.Save(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUserByID looks up an account by primary key.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
