package reviewcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/robowebsolution/glory-home-eg-sub001/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Review{}))

	r := gin.New()
	r.GET("/api/reviews", GetReviews(db))
	r.POST("/admin/reviews", CreateReview(db))
	r.PUT("/admin/reviews/:id", UpdateReview(db))
	r.DELETE("/admin/reviews/:id", DeleteReview(db))
	return r, db
}

func TestReviewRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)

	body := `{"comment_ar":"ممتاز","comment_en":"Excellent"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.NotEqual(t, uuid.Nil, created.ID, "server must assign an id")
	require.False(t, created.CreatedAt.IsZero(), "server must assign a timestamp")

	req = httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
	require.Len(t, listed, 1)
	require.Equal(t, "ممتاز", listed[0].ARComment)
	require.Equal(t, "Excellent", listed[0].EComment)
	require.Equal(t, created.ID, listed[0].ID)
}

func TestCreateReviewRejectsBothEmpty(t *testing.T) {
	r, db := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/reviews", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	require.Zero(t, count, "rejected review must not be written")
}

func TestCreateReviewKeepsSingleLanguageEmpty(t *testing.T) {
	r, db := setupRouter(t)

	body := `{"comment_en":"Great workmanship"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Review
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "", stored.ARComment, "empty Arabic text stays empty, never synthesized")
	require.Equal(t, "Great workmanship", stored.EComment)
}

func TestDeleteReview(t *testing.T) {
	r, db := setupRouter(t)

	review := models.Review{EComment: "to delete"}
	require.NoError(t, db.Create(&review).Error)

	req := httptest.NewRequest(http.MethodDelete, "/admin/reviews/"+review.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/admin/reviews/"+review.ID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
