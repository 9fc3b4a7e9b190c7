package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

func setupLogin(t *testing.T, userID uuid.UUID, grantStatus int) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if grantStatus != http.StatusOK {
			w.WriteHeader(grantStatus)
			return
		}
		fmt.Fprintf(w, `{"access_token":"provider-token","token_type":"bearer","expires_in":3600,"user":{"id":%q,"email":"admin@example.com"}}`, userID)
	}))
	t.Cleanup(provider.Close)
	t.Setenv("SUPABASE_URL", provider.URL)
	t.Setenv("SUPABASE_ANON_KEY", "test-anon-key")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	r := gin.New()
	r.POST("/auth/login", LoginHandler(db))
	r.POST("/auth/logout", LogoutHandler())
	return r, db
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSetsSessionForAdmin(t *testing.T) {
	userID := uuid.New()
	r, db := setupLogin(t, userID, http.StatusOK)
	if err := db.Create(&models.AdminUser{ID: userID, Email: "admin@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	w := postLogin(t, r, `{"email":"admin@example.com","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Token != "provider-token" || resp.User.ID != userID.String() {
		t.Errorf("unexpected login response: %+v", resp)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, SessionCookie+"=provider-token") {
		t.Errorf("session cookie not set: %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("session cookie not HttpOnly: %q", cookie)
	}
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	// Valid credentials at the provider, but no allow-list row.
	r, _ := setupLogin(t, uuid.New(), http.StatusOK)

	w := postLogin(t, r, `{"email":"user@example.com","password":"hunter22"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusForbidden)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupLogin(t, uuid.New(), http.StatusBadRequest)

	w := postLogin(t, r, `{"email":"admin@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusUnauthorized)
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	r, _ := setupLogin(t, uuid.New(), http.StatusOK)

	for _, body := range []string{`{}`, `{"email":"not-an-email","password":"x"}`, `{"email":"a@b.com"}`} {
		w := postLogin(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: Status = %v, want %v", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setupLogin(t, uuid.New(), http.StatusOK)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusOK)
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, SessionCookie+"=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("logout did not clear cookie: %q", cookie)
	}
}
