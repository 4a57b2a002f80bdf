package handlers

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"hajj-admin/internal/middleware"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthHandler struct {
	users  *repositories.UserRepository
	jwtKey []byte
	log    logger.Logger
}

func NewAuthHandler(users *repositories.UserRepository, jwtKey []byte, log logger.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtKey: jwtKey, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailPattern.MatchString(email) {
		return fiber.NewError(fiber.StatusBadRequest, "Please enter a valid email address")
	}
	if msg := validatePassword(req.Password); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	if _, err := h.users.FindByEmail(c.Context(), email); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now()
	if _, err := h.users.Insert(c.Context(), models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		h.log.Error("signup failed", "email", email, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully"})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	u, err := h.users.FindByEmail(c.Context(), email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
	}

	claims := middleware.Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtKey)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"token": signed,
		"user":  fiber.Map{"id": u.ID.Hex(), "email": u.Email},
	})
}

// GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
	}

	u, err := h.users.FindByID(c.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	lastLogin := u.LastLogin
	if lastLogin.IsZero() {
		lastLogin = time.Now()
	}
	return c.JSON(fiber.Map{"email": u.Email, "lastLogin": lastLogin})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Both current and new passwords are required")
	}

	id, err := primitive.ObjectIDFromHex(middleware.UserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
	}
	u, err := h.users.FindByID(c.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
	}
	if msg := validatePassword(req.NewPassword); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	if err := h.users.UpdatePassword(c.Context(), id, string(hash)); err != nil {
		h.log.Error("password update failed", "user", id.Hex(), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// validatePassword enforces the signup password policy, returning a
// user-facing message or "" when the password is acceptable.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return "Password must include at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}
