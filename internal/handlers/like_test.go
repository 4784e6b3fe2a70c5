package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"songguo/internal/db"
	"songguo/internal/middleware"
	"songguo/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=10000&_txlock=immediate"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Resource{},
		&models.Comment{},
		&models.Like{},
		&models.PointsHistory{},
		&models.Purchase{},
		&models.RechargeOrder{},
		&models.Favorite{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = gdb
}

// setAuthUser 代替 LoadUser，直接把用户放进上下文
func setAuthUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.CheckUserKey, user)
		}
		c.Next()
	}
}

func setupLikeRouter(t *testing.T, user *models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLikeHandler()
	r.POST("/api/likes", setAuthUser(user), middleware.AuthRequired(), h.Toggle)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestToggleEndpointRequiresLogin(t *testing.T) {
	setupTestDB(t)
	r := setupLikeRouter(t, nil)

	w := postJSON(t, r, "/api/likes", gin.H{"targetType": "post", "targetId": 1})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestToggleEndpoint(t *testing.T) {
	setupTestDB(t)

	user := models.User{Username: "author", Email: "author@example.com", Password: "hashed"}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	post := models.Post{AuthorID: user.ID, Title: "测试帖子", Content: "测试内容"}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	r := setupLikeRouter(t, &user)

	// 第一次点赞
	w := postJSON(t, r, "/api/likes", gin.H{"targetType": "post", "targetId": post.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Liked bool `json:"liked"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !resp.Success || !resp.Data.Liked {
		t.Errorf("Expected success with liked=true, got %s", w.Body.String())
	}

	// 第二次取消点赞
	w = postJSON(t, r, "/api/likes", gin.H{"targetType": "post", "targetId": post.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Data.Liked {
		t.Errorf("Expected liked=false on second toggle, got %s", w.Body.String())
	}

	var count int64
	db.DB.Model(&models.Like{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected like record removed, found %d", count)
	}
}

func TestToggleEndpointBadRequest(t *testing.T) {
	setupTestDB(t)
	user := models.User{Username: "author", Email: "author@example.com", Password: "hashed"}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	post := models.Post{AuthorID: user.ID, Title: "测试帖子", Content: "测试内容"}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}
	r := setupLikeRouter(t, &user)

	for _, body := range []gin.H{
		{"targetId": post.ID},                       // 缺 targetType
		{"targetType": "post"},                      // 缺 targetId
		{"targetType": "page", "targetId": post.ID}, // 非法类型
	} {
		w := postJSON(t, r, "/api/likes", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Body %v: expected 400, got %d: %s", body, w.Code, w.Body.String())
		}
	}

	// 目标不存在
	w := postJSON(t, r, "/api/likes", gin.H{"targetType": "post", "targetId": 9999})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing target, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleEndpointConcurrent(t *testing.T) {
	setupTestDB(t)

	author := models.User{Username: "author", Email: "author@example.com", Password: "hashed"}
	if err := db.DB.Create(&author).Error; err != nil {
		t.Fatalf("Failed to create author: %v", err)
	}
	post := models.Post{AuthorID: author.ID, Title: "测试帖子", Content: "测试内容"}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	const n = 5
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username: fmt.Sprintf("liker%02d", i),
			Email:    fmt.Sprintf("liker%02d@example.com", i),
			Password: "hashed",
		}
		if err := db.DB.Create(&user).Error; err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		r := setupLikeRouter(t, &user)
		go func(r *gin.Engine) {
			w := postJSON(t, r, "/api/likes", gin.H{"targetType": "post", "targetId": post.ID})
			done <- w.Code
		}(r)
	}
	for i := 0; i < n; i++ {
		if code := <-done; code != http.StatusOK {
			t.Errorf("Expected 200 from concurrent toggle, got %d", code)
		}
	}

	var refreshed models.Post
	if err := db.DB.First(&refreshed, post.ID).Error; err != nil {
		t.Fatalf("Failed to reload post: %v", err)
	}
	if refreshed.LikesCount != n {
		t.Errorf("Expected likes_count %d, got %d", n, refreshed.LikesCount)
	}
}
