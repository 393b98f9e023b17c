// handlers/progress.go - Progress summary and quiz history
package handlers

import (
	"log"
	"sort"

	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/fiber/v2"
)

// Progress returns the user's summary stats and quiz history, most recent
// first, with a performance grade per attempt.
func (h *Handler) Progress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := h.Store.GetUserProfile(c.Context(), userID)
	if err != nil {
		log.Printf("progress: %v", err)
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	history := make([]models.QuizAttempt, len(user.History))
	copy(history, user.History)
	sort.Slice(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})

	entries := make([]fiber.Map, 0, len(history))
	for _, attempt := range history {
		icon, text := grade(attempt.Percentage)
		entries = append(entries, fiber.Map{
			"module":       attempt.Module,
			"module_title": models.ModuleTitle(attempt.Module),
			"score":        attempt.Score,
			"correct":      attempt.Correct,
			"total":        attempt.Total,
			"percentage":   attempt.Percentage,
			"date":         attempt.CreatedAt,
			"grade_icon":   icon,
			"grade_text":   text,
		})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"total_points":      user.TotalPoints,
		"quizzes_completed": user.QuizzesCompleted,
		"avg_accuracy":      models.AverageAccuracy(user.History),
		"history":           entries,
	})
}

func grade(percentage int) (icon, text string) {
	switch {
	case percentage == 100:
		return "🏆", "Perfect!"
	case percentage >= 80:
		return "⭐", "Excellent"
	case percentage >= 60:
		return "👍", "Good"
	case percentage >= 40:
		return "💪", "Keep Trying"
	}
	return "📚", "Keep Learning"
}
