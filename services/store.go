// services/store.go - Account/data store adapter (GORM + Postgres)
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduplay/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenTTL matches the session cache validity window.
const TokenTTL = 30 * 24 * time.Hour

// AccountStore is the single adapter in front of the backing store. It owns
// token issuance/verification and all reads/writes of user records, quiz
// history and badge rows. Badge rows are normalized to the BadgeAward shape
// at this boundary.
type AccountStore struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAccountStore(db *gorm.DB, jwtSecret []byte) *AccountStore {
	return &AccountStore{db: db, jwtSecret: jwtSecret}
}

// IssueToken signs a 30-day session token for the user.
func (s *AccountStore) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// CheckAuth asks the store who the bearer of token is. A missing, invalid or
// expired token and a deleted user all mean "no user" (nil, nil); only a
// store failure returns an error, so callers can distinguish "not logged in"
// from "could not find out".
func (s *AccountStore) CheckAuth(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return nil, nil
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, nil
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("auth check: %w", err)
	}

	return &Identity{UserID: user.ID, Email: user.Email, Username: user.Username}, nil
}

// AuthCheckerFor binds a bearer token into an AuthChecker for the reconciler.
func (s *AccountStore) AuthCheckerFor(token string) AuthChecker {
	return AuthCheckFunc(func(ctx context.Context) (*Identity, error) {
		return s.CheckAuth(ctx, token)
	})
}

func (s *AccountStore) parseToken(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GetUserProfile loads the full user record with badges and quiz history.
func (s *AccountStore) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Badges").
		Preload("History").
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", userID, err)
	}
	return &user, nil
}

// UsernameTaken reports whether a user already claimed username.
func (s *AccountStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}

// CreateUser inserts the profile row for a new account.
func (s *AccountStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindUserByUsername looks a user up for login. gorm.ErrRecordNotFound is
// passed through so the handler can collapse it into a generic message.
func (s *AccountStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful sign-in.
func (s *AccountStore) TouchLastLogin(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("last_login", time.Now()).Error
}

// RecordQuizAttempt appends one history row and bumps the user's counters as
// a single transaction. The counters are incremented in SQL rather than
// read-modify-written, so concurrent submissions from multiple tabs cannot
// lose an increment.
func (s *AccountStore) RecordQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}

		result := tx.Model(&models.User{}).
			Where("id = ?", attempt.UserID).
			Updates(map[string]interface{}{
				"total_points":      gorm.Expr("total_points + ?", attempt.Score),
				"quizzes_completed": gorm.Expr("quizzes_completed + ?", 1),
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("update counters: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("update counters: user %s not found", attempt.UserID)
		}
		return nil
	})
}

// InsertBadgeIfAbsent persists one earned badge, keyed on (userID, badgeID).
// The unique index plus ON CONFLICT DO NOTHING makes the award safe under
// concurrent evaluation; the returned bool reports whether a row was written.
func (s *AccountStore) InsertBadgeIfAbsent(ctx context.Context, userID string, def models.BadgeDefinition) (bool, error) {
	award := models.BadgeAward{
		UserID:      userID,
		BadgeID:     def.ID,
		Name:        def.Name,
		Icon:        def.Icon,
		Description: def.Description,
		EarnedAt:    time.Now(),
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).
		Create(&award)
	if result.Error != nil {
		return false, fmt.Errorf("insert badge %s: %w", def.ID, result.Error)
	}
	return result.RowsAffected > 0, nil
}
