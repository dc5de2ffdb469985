package services

import (
	"errors"
	"time"

	"github.com/docfill/docfill-go/dto"
	"github.com/docfill/docfill-go/middleware"
	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.CreateUserInput) (*models.User, error) {
	_, err := s.Repos.User.FindByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	user := &models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.UserRoleUser,
	}
	if err := s.Repos.User.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(username, password string) (*models.User, string, error) {
	user, err := s.Repos.User.FindByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role == models.UserRoleAdmin, 24*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.Repos.User.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListRecipients returns the users a template can be assigned to.
func (s *UserService) ListRecipients() ([]models.User, error) {
	return s.Repos.User.FindByRole(models.UserRoleUser)
}

func (s *UserService) ListAll() ([]models.User, error) {
	return s.Repos.User.FindAll()
}

func (s *UserService) SetRole(id uint, role models.UserRole) (*models.User, error) {
	user, err := s.Repos.User.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.Role = role
	if err := s.Repos.User.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
