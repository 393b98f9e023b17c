// handlers/quiz.go - Question bank and quiz submission
package handlers

import (
	"log"

	"eduplay/middleware"
	"eduplay/models"
	"eduplay/services"

	"github.com/gofiber/fiber/v2"
)

type SubmitQuizRequest struct {
	Module  string `json:"module"`
	Score   int    `json:"score"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// GetQuizQuestions serves the fixed question list for a module.
func (h *Handler) GetQuizQuestions(c *fiber.Ctx) error {
	module := c.Query("module", models.ModuleMathematics)

	questions, ok := services.QuizQuestions(module)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid module"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"module":    module,
		"title":     models.ModuleTitle(module) + " Quiz",
		"questions": questions,
	})
}

// SubmitQuiz records a completed quiz: one appended history row plus the
// counter bump (+score points, +1 completed) in a single transaction, then
// achievement evaluation against the fresh snapshot.
func (h *Handler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !models.ValidModule(req.Module) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid module"})
	}
	// Every quiz has exactly ten questions.
	if req.Total != models.QuestionsPerQuiz || req.Correct < 0 || req.Correct > req.Total {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quiz result"})
	}
	if req.Score < 0 || req.Score > req.Total*models.PointsPerQuestion {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quiz result"})
	}

	attempt := models.QuizAttempt{
		UserID:     userID,
		Module:     req.Module,
		Score:      req.Score,
		Correct:    req.Correct,
		Total:      req.Total,
		Percentage: models.Percentage(req.Correct, req.Total),
	}

	if err := h.Store.RecordQuizAttempt(c.Context(), &attempt); err != nil {
		log.Printf("submit quiz: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record attempt"})
	}

	// Re-read the profile so evaluation sees the row and counters just written.
	user, err := h.Store.GetUserProfile(c.Context(), userID)
	if err != nil {
		log.Printf("submit quiz: reload profile: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load updated profile"})
	}

	newBadges, err := h.awardNewBadges(c.Context(), user)
	if err != nil {
		log.Printf("submit quiz: badge awarding failed: %v", err)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"score":             attempt.Score,
		"correct":           attempt.Correct,
		"total":             attempt.Total,
		"percentage":        attempt.Percentage,
		"total_points":      user.TotalPoints,
		"quizzes_completed": user.QuizzesCompleted,
		"new_badges":        newBadges,
	})
}
