package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/auth"
	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

const testJWTSecret = "test-secret"

func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SUPABASE_JWT_SECRET", testJWTSecret)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Product{}, &models.Category{},
		&models.ProjectCategory{}, &models.Project{}, &models.ProjectImage{},
		&models.Review{}, &models.ContactMessage{}, &models.Customer{},
		&models.Video{}, &models.Profile{}, &models.AdminUser{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func signSession(t *testing.T, userID uuid.UUID, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": "authenticated",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign session token: %v", err)
	}
	return token
}

func adminRequest(token, accept string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req
}

func TestAdminGuardRedirectsAnonymousBrowser(t *testing.T) {
	r, _ := setupApp(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("", "text/html"))

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusTemporaryRedirect)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}

func TestAdminGuardRejectsAnonymousAPIClient(t *testing.T) {
	r, _ := setupApp(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest("", ""))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusUnauthorized)
	}
}

func TestAdminGuardRejectsNonAdmin(t *testing.T) {
	r, _ := setupApp(t)

	// Valid session, but the user id is not on the allow-list: same
	// redirect as an anonymous request, no distinct unauthorized page.
	token := signSession(t, uuid.New(), testJWTSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(token, "text/html"))

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusTemporaryRedirect)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}

func TestAdminGuardRejectsForgedToken(t *testing.T) {
	r, db := setupApp(t)

	userID := uuid.New()
	if err := db.Create(&models.AdminUser{ID: userID, Email: "admin@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	token := signSession(t, userID, "wrong-secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(token, ""))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusUnauthorized)
	}
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	r, db := setupApp(t)

	userID := uuid.New()
	if err := db.Create(&models.AdminUser{ID: userID, Email: "admin@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	token := signSession(t, userID, testJWTSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(token, ""))

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool             `json:"ok"`
		Counts map[string]int64 `json:"counts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("dashboard ok = false")
	}
	if _, found := resp.Counts["products"]; !found {
		t.Error("dashboard missing products count")
	}
}

func TestLoginPageForwardsAuthedAdmin(t *testing.T) {
	r, db := setupApp(t)

	userID := uuid.New()
	if err := db.Create(&models.AdminUser{ID: userID, Email: "admin@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: signSession(t, userID, testJWTSecret)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusTemporaryRedirect)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("Location = %q, want /admin/dashboard", loc)
	}

	// Without a session the login page renders normally.
	req = httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestPublicReadsCarryCacheWindow(t *testing.T) {
	r, _ := setupApp(t)

	for _, path := range []string{"/api/products", "/api/categories", "/api/projects", "/api/videos"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: Status = %v, want %v", path, w.Code, http.StatusOK)
		}
		want := "public, s-maxage=600, stale-while-revalidate=60"
		if got := w.Header().Get("Cache-Control"); got != want {
			t.Errorf("GET %s: Cache-Control = %q, want %q", path, got, want)
		}
	}
}

func TestAdminResponsesNotCached(t *testing.T) {
	r, db := setupApp(t)

	userID := uuid.New()
	if err := db.Create(&models.AdminUser{ID: userID, Email: "admin@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(signSession(t, userID, testJWTSecret), ""))
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("admin response carries Cache-Control %q, want none", cc)
	}
}

func TestSitemapIncludesLiveContent(t *testing.T) {
	r, db := setupApp(t)

	cat := models.Category{ARName: "كنب", EName: "Sofas"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	product := models.Product{EName: "corner-sofa", Price: 900, Image: "https://cdn.example.com/s.jpg"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "/category/sofas") {
		t.Error("sitemap missing category slug URL")
	}
	if !strings.Contains(body, "/products/"+product.ID.String()) {
		t.Error("sitemap missing product URL")
	}
}
