package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-reservation-api/models"
	"hotel-reservation-api/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

// AdminService handles admin provisioning and login with lockout.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// LoginResult carries the issued token plus the admin's profile.
type LoginResult struct {
	Token       string        `json:"token"`
	Admin       *models.Admin `json:"admin"`
	Permissions []string      `json:"permissions"`
}

// Login verifies credentials. Five consecutive failures lock the account
// for fifteen minutes; a success resets the counter.
func (s *AdminService) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin %s: %w", username, err)
	}

	now := time.Now().UTC()
	if admin.Locked(now) {
		return nil, ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		attempts := nextFailedAttempts(&admin, now)
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		if attempts < maxFailedLogins && admin.LockedUntil != nil {
			updates["locked_until"] = nil
		}
		if attempts >= maxFailedLogins {
			lockedUntil := now.Add(lockoutDuration)
			updates["locked_until"] = lockedUntil
			log.Printf("warning: admin %s locked until %s after %d failed logins",
				username, lockedUntil.Format(time.RFC3339), attempts)
		}
		if err := s.DB.Model(&admin).Updates(updates).Error; err != nil {
			log.Printf("warning: failed to record failed login for %s: %v", username, err)
		}
		if attempts >= maxFailedLogins {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if admin.FailedLoginAttempts > 0 || admin.LockedUntil != nil {
		err := s.DB.Model(&admin).Updates(map[string]interface{}{
			"failed_login_attempts": 0,
			"locked_until":          nil,
		}).Error
		if err != nil {
			log.Printf("warning: failed to reset login counter for %s: %v", username, err)
		}
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		Token:       token,
		Admin:       &admin,
		Permissions: models.PermissionsForRole(admin.Role),
	}, nil
}

// nextFailedAttempts returns the failure counter to record after a wrong
// password. Once a previous lock has expired the count starts over; carrying
// the old total forward would re-lock on the very next miss.
func nextFailedAttempts(admin *models.Admin, now time.Time) int {
	if admin.LockedUntil != nil && !now.Before(*admin.LockedUntil) {
		return 1
	}
	return admin.FailedLoginAttempts + 1
}

// CreateAdminInput is the privileged provisioning payload.
type CreateAdminInput struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (s *AdminService) Create(input CreateAdminInput) (*models.Admin, error) {
	if !models.IsValidRole(input.Role) {
		return nil, fmt.Errorf("validation: unknown role %q", input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(input.FullName),
		Username: strings.TrimSpace(input.Username),
		Password: string(hash),
		Role:     input.Role,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}

func (s *AdminService) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin %d: %w", id, err)
	}
	return &admin, nil
}

func (s *AdminService) List() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}
