package services

import (
	"errors"
	"strings"

	"hoteldash-backend/models"
	"hoteldash-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials against the seeded staff table and issues
// session tokens. Role gating itself happens at the route layer.
type AuthService struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{DB: db, Secret: secret}
}

func (s *AuthService) Login(email, password string) (models.StaffUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.StaffUser{}, "", invalidField("email", "email and password are required")
	}

	var user models.StaffUser
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.StaffUser{}, "", ErrInvalidCredentials
		}
		return models.StaffUser{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.StaffUser{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.Secret, user.ID, user.Role)
	if err != nil {
		return models.StaffUser{}, "", err
	}
	return user, token, nil
}

// Register creates a customer account. Staff roles are seed-only.
func (s *AuthService) Register(name, email, password, phone string) (models.StaffUser, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.StaffUser{}, "", invalidField("name", "name is required")
	}
	if email == "" {
		return models.StaffUser{}, "", invalidField("email", "email is required")
	}
	if len(password) < 6 {
		return models.StaffUser{}, "", invalidField("password", "password must be at least 6 characters")
	}

	var count int64
	s.DB.Model(&models.StaffUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return models.StaffUser{}, "", invalidField("email", "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.StaffUser{}, "", err
	}

	user := models.StaffUser{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleCustomer,
		Phone:    phone,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.StaffUser{}, "", err
	}

	token, err := utils.GenerateToken(s.Secret, user.ID, user.Role)
	if err != nil {
		return models.StaffUser{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUser(id uint) (models.StaffUser, error) {
	var user models.StaffUser
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.StaffUser{}, ErrNotFound
		}
		return models.StaffUser{}, err
	}
	return user, nil
}
