// services/achievements.go - Badge catalog and evaluation
package services

import (
	"eduplay/models"
)

// badgeRule pairs a catalog entry with its trigger predicate.
type badgeRule struct {
	def     models.BadgeDefinition
	trigger func(stats models.UserStats, history []models.QuizAttempt) bool
}

// catalog is the fixed set of nine badges. Order matters: Evaluate emits
// newly-earned badges in catalog order.
var catalog = []badgeRule{
	{
		def: models.BadgeDefinition{ID: "first_quiz", Name: "First Steps", Icon: "🌟", Description: "Complete your first quiz"},
		trigger: func(stats models.UserStats, _ []models.QuizAttempt) bool {
			return stats.QuizzesCompleted >= 1
		},
	},
	{
		def: models.BadgeDefinition{ID: "quiz_master_5", Name: "Quiz Master", Icon: "🎓", Description: "Complete 5 quizzes"},
		trigger: func(stats models.UserStats, _ []models.QuizAttempt) bool {
			return stats.QuizzesCompleted >= 5
		},
	},
	{
		def: models.BadgeDefinition{ID: "dedicated_learner", Name: "Dedicated", Icon: "⭐", Description: "Complete 10 quizzes"},
		trigger: func(stats models.UserStats, _ []models.QuizAttempt) bool {
			return stats.QuizzesCompleted >= 10
		},
	},
	{
		def: models.BadgeDefinition{ID: "point_collector", Name: "Point Collector", Icon: "💎", Description: "Earn 500 points"},
		trigger: func(stats models.UserStats, _ []models.QuizAttempt) bool {
			return stats.TotalPoints >= 500
		},
	},
	{
		def: models.BadgeDefinition{ID: "perfect_score", Name: "Perfect!", Icon: "💯", Description: "Get 100% on a quiz"},
		trigger: func(_ models.UserStats, history []models.QuizAttempt) bool {
			return anyAttempt(history, func(a models.QuizAttempt) bool { return a.Percentage == 100 })
		},
	},
	{
		def: models.BadgeDefinition{ID: "high_scorer", Name: "High Scorer", Icon: "🏆", Description: "Score 90%+ on a quiz"},
		trigger: func(_ models.UserStats, history []models.QuizAttempt) bool {
			return anyAttempt(history, func(a models.QuizAttempt) bool { return a.Percentage >= 90 })
		},
	},
	{
		def: models.BadgeDefinition{ID: "math_whiz", Name: "Math Whiz", Icon: "🧮", Description: "Complete 3 math quizzes"},
		trigger: func(_ models.UserStats, history []models.QuizAttempt) bool {
			return countModule(history, models.ModuleMathematics) >= 3
		},
	},
	{
		def: models.BadgeDefinition{ID: "word_master", Name: "Word Master", Icon: "📖", Description: "Complete 3 English quizzes"},
		trigger: func(_ models.UserStats, history []models.QuizAttempt) bool {
			return countModule(history, models.ModuleEnglish) >= 3
		},
	},
	{
		def: models.BadgeDefinition{ID: "knowledge_seeker", Name: "Knowledge Seeker", Icon: "🌍", Description: "Complete 3 GK quizzes"},
		trigger: func(_ models.UserStats, history []models.QuizAttempt) bool {
			return countModule(history, models.ModuleGeneralKnowledge) >= 3
		},
	},
}

// BadgeCatalog returns the definitions of all nine badges in catalog order.
func BadgeCatalog() []models.BadgeDefinition {
	defs := make([]models.BadgeDefinition, 0, len(catalog))
	for _, rule := range catalog {
		defs = append(defs, rule.def)
	}
	return defs
}

// Evaluate returns the badges newly earned against the given snapshot, in
// catalog order, skipping ids already present in alreadyAwarded. It is pure
// and idempotent: re-running with the previous output's ids merged into
// alreadyAwarded emits nothing.
func Evaluate(stats models.UserStats, history []models.QuizAttempt, alreadyAwarded map[string]bool) []models.BadgeDefinition {
	var earned []models.BadgeDefinition
	for _, rule := range catalog {
		if alreadyAwarded[rule.def.ID] {
			continue
		}
		if rule.trigger(stats, history) {
			earned = append(earned, rule.def)
		}
	}
	return earned
}

func anyAttempt(history []models.QuizAttempt, pred func(models.QuizAttempt) bool) bool {
	for _, attempt := range history {
		if pred(attempt) {
			return true
		}
	}
	return false
}

func countModule(history []models.QuizAttempt, module string) int {
	n := 0
	for _, attempt := range history {
		if attempt.Module == module {
			n++
		}
	}
	return n
}
