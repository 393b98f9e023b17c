// models/badge.go
package models

import "time"

// BadgeDefinition is one entry of the fixed badge catalog.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// BadgeAward records that a user earned a badge. At most one row may exist
// per (user_id, badge_id); the composite unique index is the real guarantee,
// the evaluator's check-then-insert is an optimization on top of it.
type BadgeAward struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;type:uuid;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID     string    `gorm:"not null;size:40;uniqueIndex:idx_user_badge" json:"badge_id"`
	Name        string    `gorm:"not null" json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

func (BadgeAward) TableName() string {
	return "badges"
}

// AwardedIDs collects the badge ids already held, for the evaluator.
func AwardedIDs(badges []BadgeAward) map[string]bool {
	ids := make(map[string]bool, len(badges))
	for _, b := range badges {
		ids[b.BadgeID] = true
	}
	return ids
}
