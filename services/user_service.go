package services

import (
	"errors"
	"fmt"

	"skatelog/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user from a validated signup form.
func (s *UserService) Register(form *models.SignupForm) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", form.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user := &models.User{
		Email:    form.Email,
		Username: form.Username,
		Password: form.Password,
	}

	if err := user.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate looks the user up by email and verifies the password.
// Both a missing user and a wrong password come back as ErrNotFound so
// the login page gives nothing away.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Posts").Preload("Posts.Skatepark").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
