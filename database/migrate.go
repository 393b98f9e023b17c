// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"eduplay/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations and index creation.
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.QuizAttempt{},
		&models.BadgeAward{},
	); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	createIndexes(db)

	log.Println("✅ Migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) {
	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")

	// Quiz history indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quiz_history_user ON quiz_history(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quiz_history_module ON quiz_history(module)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quiz_history_created ON quiz_history(created_at DESC)")

	// Badge indexes. The unique pair index is the real duplicate-award
	// guard; the evaluator's check-then-insert is only an optimization.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_badge ON badges(user_id, badge_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_badges_user ON badges(user_id)")
}
