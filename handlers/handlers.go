// handlers/handlers.go - Shared handler dependencies
package handlers

import (
	"context"
	"time"

	"eduplay/models"
	"eduplay/services"
)

// Store is what the handlers need from the account/data store. The concrete
// implementation is services.AccountStore; tests substitute a fake.
type Store interface {
	IssueToken(user *models.User) (string, error)
	AuthCheckerFor(token string) services.AuthChecker
	GetUserProfile(ctx context.Context, userID string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	TouchLastLogin(ctx context.Context, userID string) error
	RecordQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error
	InsertBadgeIfAbsent(ctx context.Context, userID string, def models.BadgeDefinition) (bool, error)
}

// Handler carries the wiring for all HTTP handlers. It is constructed once
// in main and passed explicitly; there are no package-level singletons.
type Handler struct {
	Store       Store
	Retry       services.RetryPolicy
	Notifier    *Notifier
	JWTSecret   []byte
	AuthTimeout time.Duration
}

func New(store Store, jwtSecret []byte) *Handler {
	return &Handler{
		Store:       store,
		Retry:       services.DefaultRetryPolicy,
		Notifier:    NewNotifier(),
		JWTSecret:   jwtSecret,
		AuthTimeout: services.DefaultAuthTimeout,
	}
}
