package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"eduplay/models"
	"eduplay/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// fakeStore is an in-memory Store for handler tests. RecordQuizAttempt
// mirrors the real adapter's contract: one appended row plus the counter
// bump, as a single step.
type fakeStore struct {
	mu       sync.Mutex
	user     *models.User
	attempts []models.QuizAttempt
	badges   []models.BadgeAward
	findErr  error
}

func (f *fakeStore) IssueToken(user *models.User) (string, error) {
	return "test-token", nil
}

func (f *fakeStore) AuthCheckerFor(token string) services.AuthChecker {
	return services.AuthCheckFunc(func(ctx context.Context) (*services.Identity, error) {
		if f.user == nil {
			return nil, nil
		}
		return &services.Identity{UserID: f.user.ID, Email: f.user.Email, Username: f.user.Username}, nil
	})
}

func (f *fakeStore) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil || f.user.ID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	user := *f.user
	user.Badges = append([]models.BadgeAward(nil), f.badges...)
	user.History = append([]models.QuizAttempt(nil), f.attempts...)
	return &user, nil
}

func (f *fakeStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return f.user != nil && f.user.Username == username, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = user
	return nil
}

func (f *fakeStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.user == nil || f.user.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeStore) TouchLastLogin(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeStore) RecordQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	attempt.CreatedAt = time.Now()
	f.attempts = append(f.attempts, *attempt)
	f.user.TotalPoints += attempt.Score
	f.user.QuizzesCompleted++
	return nil
}

func (f *fakeStore) InsertBadgeIfAbsent(ctx context.Context, userID string, def models.BadgeDefinition) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.badges {
		if b.BadgeID == def.ID {
			return false, nil
		}
	}
	f.badges = append(f.badges, models.BadgeAward{UserID: userID, BadgeID: def.ID, Name: def.Name})
	return true, nil
}

func newTestHandler(store Store) *Handler {
	return &Handler{
		Store:       store,
		Retry:       services.RetryPolicy{MaxAttempts: 1},
		Notifier:    NewNotifier(),
		JWTSecret:   []byte("test-secret-test-secret-test-secret"),
		AuthTimeout: time.Second,
	}
}

// quizApp mounts SubmitQuiz behind a stub auth step that injects the user id.
func quizApp(h *Handler, userID string) *fiber.App {
	app := fiber.New()
	app.Post("/api/quiz/submit", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return h.SubmitQuiz(c)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, decoded
}

func TestSubmitQuizRecordsAttemptAndBumpsCounters(t *testing.T) {
	store := &fakeStore{
		user: &models.User{ID: "u-1", Username: "quizkid", TotalPoints: 120, QuizzesCompleted: 2},
		// first_quiz is already on the shelf so this submit earns nothing new.
		badges: []models.BadgeAward{{UserID: "u-1", BadgeID: "first_quiz"}},
	}
	h := newTestHandler(store)
	app := quizApp(h, "u-1")

	status, body := postJSON(t, app, "/api/quiz/submit", SubmitQuizRequest{
		Module:  models.ModuleMathematics,
		Score:   10,
		Correct: 8,
		Total:   10,
	})

	if status != 200 {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	if len(store.attempts) != 1 {
		t.Fatalf("recorded %d attempts, want exactly 1", len(store.attempts))
	}
	attempt := store.attempts[0]
	if attempt.UserID != "u-1" || attempt.Module != models.ModuleMathematics {
		t.Errorf("attempt = %+v", attempt)
	}
	if attempt.Percentage != 80 {
		t.Errorf("attempt percentage = %d, want 80", attempt.Percentage)
	}

	if store.user.TotalPoints != 130 {
		t.Errorf("total points = %d, want 130 (+10)", store.user.TotalPoints)
	}
	if store.user.QuizzesCompleted != 3 {
		t.Errorf("quizzes completed = %d, want 3 (+1)", store.user.QuizzesCompleted)
	}

	if got := body["percentage"].(float64); got != 80 {
		t.Errorf("response percentage = %v, want 80", got)
	}
	if got := body["total_points"].(float64); got != 130 {
		t.Errorf("response total_points = %v, want 130", got)
	}
	if got := body["quizzes_completed"].(float64); got != 3 {
		t.Errorf("response quizzes_completed = %v, want 3", got)
	}
}

func TestSubmitQuizRejectsInvalidResults(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitQuizRequest
	}{
		{"unknown module", SubmitQuizRequest{Module: "science", Score: 10, Correct: 1, Total: 10}},
		{"wrong question count", SubmitQuizRequest{Module: models.ModuleMathematics, Score: 10, Correct: 1, Total: 5}},
		{"zero total", SubmitQuizRequest{Module: models.ModuleMathematics, Score: 0, Correct: 0, Total: 0}},
		{"correct above total", SubmitQuizRequest{Module: models.ModuleMathematics, Score: 110, Correct: 11, Total: 10}},
		{"negative correct", SubmitQuizRequest{Module: models.ModuleMathematics, Score: 0, Correct: -1, Total: 10}},
		{"score above maximum", SubmitQuizRequest{Module: models.ModuleMathematics, Score: 110, Correct: 10, Total: 10}},
		{"negative score", SubmitQuizRequest{Module: models.ModuleMathematics, Score: -10, Correct: 1, Total: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{user: &models.User{ID: "u-1", Username: "quizkid"}}
			app := quizApp(newTestHandler(store), "u-1")

			status, _ := postJSON(t, app, "/api/quiz/submit", tt.req)
			if status != 400 {
				t.Errorf("status = %d, want 400", status)
			}
			if len(store.attempts) != 0 {
				t.Errorf("recorded %d attempts, want 0", len(store.attempts))
			}
		})
	}
}

func TestSubmitQuizAwardsNewBadges(t *testing.T) {
	store := &fakeStore{
		user: &models.User{ID: "u-1", Username: "quizkid"},
	}
	h := newTestHandler(store)
	app := quizApp(h, "u-1")

	status, body := postJSON(t, app, "/api/quiz/submit", SubmitQuizRequest{
		Module:  models.ModuleEnglish,
		Score:   100,
		Correct: 10,
		Total:   10,
	})

	if status != 200 {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	newBadges, ok := body["new_badges"].([]interface{})
	if !ok || len(newBadges) == 0 {
		t.Fatalf("new_badges = %v, want first quiz and performance badges", body["new_badges"])
	}
	first := newBadges[0].(map[string]interface{})
	if first["id"] != "first_quiz" {
		t.Errorf("first new badge = %v, want first_quiz", first["id"])
	}
}
