package handlers

import (
	"errors"
	"testing"

	"eduplay/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func loginApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	return app
}

func userWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{ID: "u-1", Username: "quizkid", Email: "kid@example.com", Password: string(hashed)}
}

func TestLoginSucceeds(t *testing.T) {
	store := &fakeStore{user: userWithPassword(t, "secret6")}
	app := loginApp(newTestHandler(store))

	status, body := postJSON(t, app, "/api/auth/login", LoginRequest{Username: "quizkid", Password: "secret6"})

	if status != 200 {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("response has no token")
	}
	session, ok := body["session"].(map[string]interface{})
	if !ok {
		t.Fatalf("session = %v, want cache state", body["session"])
	}
	if session["user_id"] != "u-1" {
		t.Errorf("session user_id = %v, want u-1", session["user_id"])
	}
	if session["timestamp"] == "" || session["timestamp"] == nil {
		t.Error("session state has no timestamp")
	}
}

func TestLoginUnknownUserAndBadPasswordLookAlike(t *testing.T) {
	store := &fakeStore{user: userWithPassword(t, "secret6")}
	app := loginApp(newTestHandler(store))

	unknownStatus, unknownBody := postJSON(t, app, "/api/auth/login", LoginRequest{Username: "nobody", Password: "secret6"})
	badPassStatus, badPassBody := postJSON(t, app, "/api/auth/login", LoginRequest{Username: "quizkid", Password: "wrong66"})

	if unknownStatus != 401 || badPassStatus != 401 {
		t.Fatalf("statuses = %d/%d, want 401/401", unknownStatus, badPassStatus)
	}
	if unknownBody["error"] != badPassBody["error"] {
		t.Errorf("messages differ: %q vs %q, must not reveal which part failed",
			unknownBody["error"], badPassBody["error"])
	}
}

func TestLoginStoreOutageIsNotARejection(t *testing.T) {
	store := &fakeStore{findErr: errors.New("connection refused")}
	app := loginApp(newTestHandler(store))

	status, body := postJSON(t, app, "/api/auth/login", LoginRequest{Username: "quizkid", Password: "secret6"})

	if status != 500 {
		t.Fatalf("status = %d, want 500 for a store failure", status)
	}
	if body["error"] == "Invalid username or password!" {
		t.Error("store failure reported as a credential rejection")
	}
}
