package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authCallTimeout bounds the round trip to the hosted auth provider.
const authCallTimeout = 3 * time.Second

// hostedSession is the subset of the provider's password-grant response
// this service cares about.
type hostedSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// LoginHandler proxies the password grant to the hosted auth provider and,
// when the resulting user id is on the admin allow-list, sets the session
// cookie. Non-admins are rejected even with valid credentials.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		session, err := passwordGrant(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			log.Printf("❌ Hosted auth sign-in failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		userID, err := uuid.Parse(session.User.ID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if !IsAdmin(db, userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This account is not an admin"})
			return
		}

		c.SetCookie(SessionCookie, session.AccessToken, session.ExpiresIn, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"token": session.AccessToken,
			"user": gin.H{
				"id":    session.User.ID,
				"email": session.User.Email,
			},
		})
	}
}

// LogoutHandler clears the session cookie.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// LoginGate serves GET /admin/login: an already-authenticated admin is
// forwarded to the dashboard, anyone else gets the login page shell.
func LoginGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := TokenFromRequest(c); token != "" {
			if userID, err := VerifySession(token); err == nil && IsAdmin(db, userID) {
				c.Redirect(http.StatusTemporaryRedirect, "/admin/dashboard")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// passwordGrant exchanges credentials for a session at the hosted
// provider's token endpoint. Single attempt, bounded timeout, no retries.
func passwordGrant(ctx context.Context, email, password string) (*hostedSession, error) {
	baseURL := os.Getenv("SUPABASE_URL")
	anonKey := os.Getenv("SUPABASE_ANON_KEY")
	if baseURL == "" || anonKey == "" {
		return nil, fmt.Errorf("hosted auth configuration missing")
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	ctx, cancel := context.WithTimeout(ctx, authCallTimeout)
	defer cancel()

	url := baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", anonKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach auth provider: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth provider rejected sign-in (%d)", resp.StatusCode)
	}

	var session hostedSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %v", err)
	}
	if session.AccessToken == "" || session.User.ID == "" {
		return nil, fmt.Errorf("auth response missing token or user")
	}
	return &session, nil
}
