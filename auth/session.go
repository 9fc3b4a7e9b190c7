package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

// SessionCookie carries the hosted-auth access token between requests.
const SessionCookie = "gh_session"

// adminLookupTimeout bounds the allow-list query so a slow backend cannot
// stall the guard. Lookups that time out are treated as "not authorized".
const adminLookupTimeout = 1500 * time.Millisecond

var ErrInvalidSession = errors.New("invalid or expired session")

// TokenFromRequest extracts the session token from the cookie, falling
// back to a bearer Authorization header for API clients.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

// VerifySession validates a hosted-auth access token locally using the
// project JWT secret and returns the provider-assigned user id.
func VerifySession(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("SUPABASE_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidSession
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}
	return userID, nil
}

// IsAdmin reports whether the user id appears in the admin allow-list.
// Any error or timeout fails closed.
func IsAdmin(db *gorm.DB, userID uuid.UUID) bool {
	ctx, cancel := context.WithTimeout(context.Background(), adminLookupTimeout)
	defer cancel()

	var count int64
	err := db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", userID).
		Count(&count).Error
	if err != nil {
		log.Printf("❌ Admin allow-list lookup failed (failing closed): %v", err)
		return false
	}
	return count > 0
}
