package sitecontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeepaliveReportsBackendStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/health":
			w.WriteHeader(http.StatusOK)
		case "/rest/v1/":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()
	t.Setenv("SUPABASE_URL", backend.URL)
	t.Setenv("SUPABASE_ANON_KEY", "test-anon-key")

	r := gin.New()
	r.GET("/api/keepalive", Keepalive())

	req := httptest.NewRequest(http.MethodGet, "/api/keepalive", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp struct {
		OK   bool `json:"ok"`
		Auth struct {
			Status int `json:"status"`
		} `json:"auth"`
		Rest struct {
			Status int `json:"status"`
		} `json:"rest"`
		At string `json:"at"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.OK || resp.Auth.Status != 200 || resp.Rest.Status != 200 {
		t.Errorf("unexpected keepalive response: %+v", resp)
	}
	if resp.At == "" {
		t.Error("missing at timestamp")
	}
}

func TestKeepaliveUnreachableBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("SUPABASE_URL", "http://127.0.0.1:1")
	t.Setenv("SUPABASE_ANON_KEY", "test-anon-key")

	r := gin.New()
	r.GET("/api/keepalive", Keepalive())

	req := httptest.NewRequest(http.MethodGet, "/api/keepalive", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v (probe failure is not a handler failure)", w.Code, http.StatusOK)
	}

	var resp struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.OK {
		t.Error("ok should be false when the backend is unreachable")
	}
}

func TestRobotsTXT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/robots.txt", RobotsTXT())

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %v, want %v", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, disallowed := range []string{"/admin/", "/api/", "/auth/", "/orders"} {
		if !strings.Contains(body, "Disallow: "+disallowed+"\n") {
			t.Errorf("robots.txt missing Disallow: %s", disallowed)
		}
	}
}
