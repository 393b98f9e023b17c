// handlers/auth.go - Registration, login and logout
package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"eduplay/models"
	"eduplay/services"
	"eduplay/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Age             string `json:"age"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success  bool                 `json:"success"`
	Token    string               `json:"token,omitempty"`
	User     *UserInfo            `json:"user,omitempty"`
	Session  *services.CacheState `json:"session,omitempty"`
	Redirect string               `json:"redirect,omitempty"`
	Error    string               `json:"error,omitempty"`
}

type UserInfo struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Age              int       `json:"age"`
	TotalPoints      int       `json:"total_points"`
	QuizzesCompleted int       `json:"quizzes_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func userInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Age:              user.Age,
		TotalPoints:      user.TotalPoints,
		QuizzesCompleted: user.QuizzesCompleted,
		CreatedAt:        user.CreatedAt,
	}
}

// Register creates a new account. Validation failures come back with the
// specific message; the profile insert is retried under the configured
// policy because a freshly signed-up user can hit transient store races.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Error: "Invalid request body"})
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		return c.Status(400).JSON(AuthResponse{Error: err.Error()})
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return c.Status(400).JSON(AuthResponse{Error: err.Error()})
	}
	age, err := utils.ValidateAge(req.Age)
	if err != nil {
		return c.Status(400).JSON(AuthResponse{Error: err.Error()})
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return c.Status(400).JSON(AuthResponse{Error: err.Error()})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(400).JSON(AuthResponse{Error: "Passwords do not match!"})
	}

	taken, err := h.Store.UsernameTaken(c.Context(), req.Username)
	if err != nil {
		log.Printf("register: username check failed: %v", err)
		return c.Status(500).JSON(AuthResponse{Error: "Error checking username availability"})
	}
	if taken {
		return c.Status(400).JSON(AuthResponse{Error: "Username already taken! Please choose another one."})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Error: "Failed to create account"})
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Age:      age,
	}

	err = h.Retry.Do(c.Context(), func(ctx context.Context) error {
		return h.Store.CreateUser(ctx, &user)
	})
	if err != nil {
		log.Printf("register: profile creation failed: %v", err)
		return c.Status(500).JSON(AuthResponse{
			Error: "Failed to create user profile after multiple attempts. Please try logging in.",
		})
	}

	// No auto-login: the client is sent to the login page.
	return c.JSON(AuthResponse{Success: true, Redirect: services.PageLogin})
}

// Login authenticates by username and password. Lookup failures and bad
// passwords produce the same message so the response does not reveal which
// part failed.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Error: "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{Error: "Please enter both username and password!"})
	}

	user, err := h.Store.FindUserByUsername(c.Context(), req.Username)
	if err != nil {
		// An unknown username gets the same message as a bad password; a
		// store failure is not an authentication rejection.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(401).JSON(AuthResponse{Error: "Invalid username or password!"})
		}
		log.Printf("login: user lookup failed: %v", err)
		return c.Status(500).JSON(AuthResponse{Error: "Login failed. Please try again later."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Error: "Invalid username or password!"})
	}

	if err := h.Store.TouchLastLogin(c.Context(), user.ID); err != nil {
		log.Printf("login: last_login update failed: %v", err)
	}

	token, err := h.Store.IssueToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Error: "Failed to generate token"})
	}

	// Hand the client its session cache values alongside the token.
	state := services.NewCacheState(services.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})

	return c.JSON(AuthResponse{
		Success:  true,
		Token:    token,
		User:     userInfo(user),
		Session:  &state,
		Redirect: services.PageDashboard,
	})
}

// Logout instructs the client to drop its session cache and return to the
// landing page. Tokens are stateless, so there is nothing to revoke
// server-side.
func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(AuthResponse{
		Success:  true,
		Session:  nil,
		Redirect: services.PageIndex,
	})
}
