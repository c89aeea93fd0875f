package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/friendfinder/backend/internal/config"
	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/mail"
	"github.com/friendfinder/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidVerifyToken = errors.New("invalid verification token")
	ErrPasswordMismatch   = errors.New("old password wrong or confirmation does not match")
)

// AuthService owns user identity: registration, email verification, login
// with a JWT access/refresh pair, password changes, and the admin
// block/unblock/delete operations that act on the role field.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer mail.Mailer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer mail.Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// Register creates a disabled account with a fresh verification token and
// mails the verification link. A taken email is the only conflict.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	if req.Name == "" || req.Surname == "" {
		return nil, errors.New("name and surname are required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token := uuid.New().String()
	user := models.User{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Password:    string(hash),
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		City:        req.City,
		CountryID:   req.CountryID,
		Enabled:     false,
		Token:       token,
		Role:        models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.mailer.Send(user.Email, "Verify Email",
		fmt.Sprintf("Hi %s!\nPlease verify your email by clicking on this URL:\n%s/api/auth/verify?email=%s&token=%s",
			user.Name, s.cfg.SiteURL, user.Email, token))

	return &user, nil
}

// Verify enables the account when the token matches.
func (s *AuthService) Verify(email, token string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}
	if token == "" || user.Token != token {
		return ErrInvalidVerifyToken
	}
	return s.db.Model(&user).Updates(map[string]interface{}{
		"enabled": true,
		"token":   "",
	}).Error
}

// Login fails closed on a missing user or a wrong password. The enabled
// flag is intentionally not checked here.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(&user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// ChangePassword requires the old password to match and the confirmation to
// equal the new password. The hash is written with a direct update.
func (s *AuthService) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil ||
		req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < 8 {
		return errors.New("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", string(hash)).Error
}

func (s *AuthService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// BlockUser flips the role to BLOCKED; the account survives but blocked
// middleware refuses its content writes.
func (s *AuthService) BlockUser(id uint) error {
	return s.setRole(id, models.RoleBlocked)
}

func (s *AuthService) UnblockUser(id uint) error {
	return s.setRole(id, models.RoleUser)
}

func (s *AuthService) setRole(id uint, role models.UserRole) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return ErrUserNotFound
	}
	return s.db.Model(&user).Update("role", role).Error
}

// DeleteUser hard-deletes an account and its auth artifacts. Admin only.
func (s *AuthService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return ErrUserNotFound
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", id).Delete(&models.RefreshToken{})
		return tx.Delete(&user).Error
	})
}

// ListUsers is the admin user table, paged.
func (s *AuthService) ListUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := s.db.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	stored := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.db.Create(&stored).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", sum)
}
