// handlers/dashboard.go - User record loading and badge awarding
package handlers

import (
	"context"
	"log"

	"eduplay/middleware"
	"eduplay/models"
	"eduplay/services"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the full user record with summary stats, and runs the
// achievement evaluation the same way every dashboard load does: anything
// newly earned is persisted before the response is built.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := h.Store.GetUserProfile(c.Context(), userID)
	if err != nil {
		log.Printf("dashboard: %v", err)
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	newBadges, err := h.awardNewBadges(c.Context(), user)
	if err != nil {
		// Awarding is best-effort on page load; the dashboard still renders.
		log.Printf("dashboard: badge awarding failed: %v", err)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"user":              userInfo(user),
		"total_points":      user.TotalPoints,
		"quizzes_completed": user.QuizzesCompleted,
		"badges_count":      len(user.Badges),
		"avg_score":         models.AverageAccuracy(user.History),
		"badges":            user.Badges,
		"new_badges":        newBadges,
	})
}

// GetCurrentUser returns the user record with embedded badges and history.
func (h *Handler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := h.Store.GetUserProfile(c.Context(), userID)
	if err != nil {
		log.Printf("current user: %v", err)
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userInfo(user),
		"badges":  user.Badges,
		"history": user.History,
	})
}

// GetBadgeCatalog lists all nine badge definitions with the user's earned
// state, for the badge gallery.
func (h *Handler) GetBadgeCatalog(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := h.Store.GetUserProfile(c.Context(), userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	earned := models.AwardedIDs(user.Badges)
	badges := make([]fiber.Map, 0, 9)
	for _, def := range services.BadgeCatalog() {
		badges = append(badges, fiber.Map{
			"id":          def.ID,
			"name":        def.Name,
			"icon":        def.Icon,
			"description": def.Description,
			"earned":      earned[def.ID],
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"badges":  badges,
		"total":   len(badges),
		"earned":  len(user.Badges),
	})
}

// awardNewBadges evaluates the catalog against the user's current snapshot
// and persists each newly-earned badge. A badge that a concurrent evaluation
// already inserted is skipped silently. Connected dashboards are notified of
// everything written here.
func (h *Handler) awardNewBadges(ctx context.Context, user *models.User) ([]models.BadgeDefinition, error) {
	earned := services.Evaluate(user.Stats(), user.History, models.AwardedIDs(user.Badges))
	if len(earned) == 0 {
		return nil, nil
	}

	awarded := make([]models.BadgeDefinition, 0, len(earned))
	for _, def := range earned {
		inserted, err := h.Store.InsertBadgeIfAbsent(ctx, user.ID, def)
		if err != nil {
			return awarded, err
		}
		if inserted {
			awarded = append(awarded, def)
		}
	}

	if len(awarded) > 0 {
		h.Notifier.NotifyBadges(user.ID, awarded)
	}
	return awarded, nil
}
