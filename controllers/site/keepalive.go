package sitecontroller

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// keepaliveTimeout bounds each health probe to the hosted backend.
const keepaliveTimeout = 3 * time.Second

// Keepalive serves GET /api/keepalive. Pinging the auth and REST health
// endpoints keeps the hosted backend from suspending an idle project.
func Keepalive() gin.HandlerFunc {
	return func(c *gin.Context) {
		authStatus := probe(c.Request.Context(), "/auth/v1/health")
		restStatus := probe(c.Request.Context(), "/rest/v1/")

		c.JSON(http.StatusOK, gin.H{
			"ok":   authStatus < 400 && restStatus < 400,
			"auth": gin.H{"status": authStatus},
			"rest": gin.H{"status": restStatus},
			"at":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// StartKeepalivePinger probes the hosted backend on a fixed interval so it
// stays warm even with no traffic. Runs until the process exits.
func StartKeepalivePinger() {
	interval := 10 * time.Minute
	if raw := os.Getenv("KEEPALIVE_INTERVAL_MIN"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			interval = time.Duration(n) * time.Minute
		}
	}

	for {
		time.Sleep(interval)
		authStatus := probe(context.Background(), "/auth/v1/health")
		restStatus := probe(context.Background(), "/rest/v1/")
		if authStatus >= 400 || restStatus >= 400 {
			log.Printf("⚠️ Keepalive probe degraded: auth=%d rest=%d", authStatus, restStatus)
		} else {
			log.Printf("💓 Keepalive probe ok: auth=%d rest=%d", authStatus, restStatus)
		}
	}
}

// probe returns the HTTP status of one health endpoint, or 0 when the
// backend is unreachable or unconfigured.
func probe(ctx context.Context, path string) int {
	baseURL := os.Getenv("SUPABASE_URL")
	if baseURL == "" {
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, keepaliveTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return 0
	}
	if anonKey := os.Getenv("SUPABASE_ANON_KEY"); anonKey != "" {
		req.Header.Set("apikey", anonKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}
