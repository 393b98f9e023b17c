// models/quiz.go - Quiz modules, questions and attempt history
package models

import (
	"math"
	"time"
)

// Quiz modules are a fixed set; every quiz has ten questions worth ten
// points each.
const (
	ModuleMathematics      = "mathematics"
	ModuleEnglish          = "english"
	ModuleGeneralKnowledge = "general-knowledge"

	QuestionsPerQuiz  = 10
	PointsPerQuestion = 10
)

// ValidModule reports whether module names one of the fixed quiz modules.
func ValidModule(module string) bool {
	switch module {
	case ModuleMathematics, ModuleEnglish, ModuleGeneralKnowledge:
		return true
	}
	return false
}

// ModuleTitle returns the display title for a module.
func ModuleTitle(module string) string {
	switch module {
	case ModuleMathematics:
		return "🧮 Mathematics"
	case ModuleEnglish:
		return "📖 English"
	case ModuleGeneralKnowledge:
		return "🌍 General Knowledge"
	}
	return module
}

// Question is a single multiple-choice quiz question. Correct is the index
// into Options.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// QuizAttempt is one completed quiz. Rows are append-only.
type QuizAttempt struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"not null;index;type:uuid" json:"user_id"`
	Module     string    `gorm:"not null;size:30" json:"module"`
	Score      int       `gorm:"default:0" json:"score"`
	Correct    int       `gorm:"default:0" json:"correct"`
	Total      int       `gorm:"default:0" json:"total"`
	Percentage int       `gorm:"default:0" json:"percentage"`
	CreatedAt  time.Time `json:"date"`
}

func (QuizAttempt) TableName() string {
	return "quiz_history"
}

// Percentage computes round(correct/total*100). A non-positive total yields 0.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// AverageAccuracy is the rounded mean percentage across history, 0 when empty.
func AverageAccuracy(history []QuizAttempt) int {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, attempt := range history {
		sum += attempt.Percentage
	}
	return int(math.Round(float64(sum) / float64(len(history))))
}
