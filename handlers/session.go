// handlers/session.go - Page-load session reconciliation
package handlers

import (
	"eduplay/middleware"
	"eduplay/services"

	"github.com/gofiber/fiber/v2"
)

type ReconcileRequest struct {
	Page    string               `json:"page"`
	Session *services.CacheState `json:"session,omitempty"`
}

type ReconcileResponse struct {
	Success  bool                 `json:"success"`
	Allow    bool                 `json:"allow"`
	Redirect string               `json:"redirect,omitempty"`
	Session  *services.CacheState `json:"session"`
}

// Reconcile decides whether the caller may stay on the page it is loading.
// The client sends its cached session values and gets the updated cache
// state back; navigation is the client's job, this endpoint only decides.
func (h *Handler) Reconcile(c *fiber.Ctx) error {
	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Page == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Page is required"})
	}

	cache := services.NewSessionCache(services.NewMemoryStore())
	if req.Session != nil {
		cache.Restore(*req.Session)
	}

	reconciler := services.NewReconciler(
		h.Store.AuthCheckerFor(middleware.BearerToken(c)),
		cache,
	)
	reconciler.Timeout = h.AuthTimeout

	decision := reconciler.Reconcile(c.Context(), req.Page)

	resp := ReconcileResponse{
		Success:  true,
		Allow:    decision.Allow,
		Redirect: decision.Redirect,
	}
	if state, ok := cache.State(); ok {
		resp.Session = &state
	}
	return c.JSON(resp)
}
