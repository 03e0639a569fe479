package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"crewquick/internal/config"
	"crewquick/internal/middleware"
	"crewquick/internal/routes"
)

// newTestEnv builds a router backed by an in-memory sqlite database so the
// schema constraints (unique email, unique worker/job pair) are real.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.Setup("testsecret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// One connection, one in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return routes.SetupRouter(db), db
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

// signup registers an account and returns the new user id.
func signup(t *testing.T, r http.Handler, body map[string]any) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("signup %v: status %d, body %s", body["email"], w.Code, w.Body.String())
	}
	resp := decodeMap(t, w)
	id, ok := resp["user_id"].(float64)
	if !ok {
		t.Fatalf("signup response missing user_id: %s", w.Body.String())
	}
	return uint(id)
}

// login authenticates and returns the bearer token.
func login(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	resp := decodeMap(t, w)
	token, ok := resp["access_token"].(string)
	if !ok || token == "" {
		t.Fatalf("login response missing access_token: %s", w.Body.String())
	}
	return token
}

func signupWorker(t *testing.T, r http.Handler, email string) {
	t.Helper()
	signup(t, r, map[string]any{
		"email":    email,
		"password": "pw",
		"role":     "worker",
		"name":     "Test Worker",
		"skills":   []string{"painting", "roofing"},
		"location": "Austin",
	})
}

func signupContractor(t *testing.T, r http.Handler, email string) {
	t.Helper()
	signup(t, r, map[string]any{
		"email":         email,
		"password":      "pw",
		"role":          "contractor",
		"business_name": "Test Builders LLC",
		"location":      "Austin",
		"phone":         "512-555-0100",
	})
}

func signupAdmin(t *testing.T, r http.Handler, email string) {
	t.Helper()
	signup(t, r, map[string]any{
		"email":    email,
		"password": "pw",
		"role":     "admin",
	})
}
