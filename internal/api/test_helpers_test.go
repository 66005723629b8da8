package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "aura-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, path string, payload any, authCookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) []byte {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)",
			request.Method, request.URL.Path, expectedStatus, response.StatusCode, body)
	}
	return body
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	payload := map[string]any{"email": email, "password": "correct-horse-9"}
	request := jsonRequest(t, http.MethodPost, "/api/auth/register", payload, "")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("register expected status 201, got %d (body: %s)", response.StatusCode, body)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("register did not set an auth cookie")
	return ""
}

func createTestAttack(t *testing.T, app *fiber.App, authCookie string, payload map[string]any) attackResponse {
	t.Helper()

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/attacks", payload, authCookie), http.StatusCreated)

	created := attackResponse{}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode created episode: %v", err)
	}
	return created
}

func testAttackPayload(date string, severity int) map[string]any {
	return map[string]any{
		"date":          date,
		"time_bucket":   "morning",
		"severity":      severity,
		"triggers":      []string{"Stress"},
		"is_work_day":   true,
		"pain_location": "Right",
	}
}

func readAPIError(t *testing.T, body []byte) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload["error"]
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
