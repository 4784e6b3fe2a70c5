package services

import (
	"fmt"
	"sync"
	"testing"

	"songguo/internal/models"
	"songguo/internal/utils"

	"gorm.io/gorm"
)

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, price int) *models.Post {
	t.Helper()
	post := models.Post{
		AuthorID:       author.ID,
		Title:          "测试帖子",
		Content:        "测试内容",
		PointsRequired: price,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return &post
}

func likesCountOfPost(t *testing.T, db *gorm.DB, postID uint) int {
	t.Helper()
	var post models.Post
	if err := db.First(&post, postID).Error; err != nil {
		t.Fatalf("Failed to load post: %v", err)
	}
	return post.LikesCount
}

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	author := createTestUser(t, db, "author")
	user := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author, 0)

	liked, err := s.Toggle(user.ID, TargetPost, post.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !liked {
		t.Error("Expected liked=true on first toggle")
	}
	if got := likesCountOfPost(t, db, post.ID); got != 1 {
		t.Errorf("Expected likes_count 1, got %d", got)
	}
	if !s.IsLiked(user.ID, TargetPost, post.ID) {
		t.Error("Expected IsLiked=true after like")
	}
}

// 连续两次 Toggle 回到初始状态：记录删除、计数复原
func TestToggleIsInvolution(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	author := createTestUser(t, db, "author")
	user := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author, 0)

	before := likesCountOfPost(t, db, post.ID)

	liked, err := s.Toggle(user.ID, TargetPost, post.ID)
	if err != nil || !liked {
		t.Fatalf("First toggle: liked=%v err=%v", liked, err)
	}
	liked, err = s.Toggle(user.ID, TargetPost, post.ID)
	if err != nil {
		t.Fatalf("Second toggle failed: %v", err)
	}
	if liked {
		t.Error("Expected liked=false on second toggle")
	}

	if got := likesCountOfPost(t, db, post.ID); got != before {
		t.Errorf("Expected likes_count back to %d, got %d", before, got)
	}
	var count int64
	db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", user.ID, post.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected like record deleted, found %d", count)
	}
}

func TestToggleInvalidTargetType(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	author := createTestUser(t, db, "author")
	user := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author, 0)

	_, err := s.Toggle(user.ID, "page", post.ID)
	if !utils.IsErrorCode(err, utils.ErrInvalidInput) {
		t.Errorf("Expected INVALID_INPUT, got %v", err)
	}

	// 没有任何状态变化
	var likes int64
	db.Model(&models.Like{}).Count(&likes)
	if likes != 0 {
		t.Errorf("Expected no like records, got %d", likes)
	}
	if got := likesCountOfPost(t, db, post.ID); got != 0 {
		t.Errorf("Expected likes_count 0, got %d", got)
	}
}

func TestToggleTargetNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	user := createTestUser(t, db, "liker")

	_, err := s.Toggle(user.ID, TargetPost, 9999)
	if !utils.IsErrorCode(err, utils.ErrNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

// 三种目标类型各自独立计数
func TestToggleAllTargetKinds(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	author := createTestUser(t, db, "author")
	user := createTestUser(t, db, "liker")

	post := createTestPost(t, db, author, 0)
	resource := models.Resource{AuthorID: author.ID, Title: "测试资源", FileURL: "/files/a.zip"}
	if err := db.Create(&resource).Error; err != nil {
		t.Fatalf("Failed to create resource: %v", err)
	}
	comment := models.Comment{PostID: post.ID, UserID: author.ID, Content: "测试评论"}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	for _, target := range []struct {
		kind string
		id   uint
	}{
		{TargetPost, post.ID},
		{TargetResource, resource.ID},
		{TargetComment, comment.ID},
	} {
		liked, err := s.Toggle(user.ID, target.kind, target.id)
		if err != nil {
			t.Fatalf("Toggle %s failed: %v", target.kind, err)
		}
		if !liked {
			t.Errorf("Expected liked=true for %s", target.kind)
		}
	}

	var r models.Resource
	db.First(&r, resource.ID)
	if r.LikesCount != 1 {
		t.Errorf("Expected resource likes_count 1, got %d", r.LikesCount)
	}
	var cm models.Comment
	db.First(&cm, comment.ID)
	if cm.LikesCount != 1 {
		t.Errorf("Expected comment likes_count 1, got %d", cm.LikesCount)
	}
}

// N 个不同用户并发点赞同一帖子，最终 likes_count 必须恰好为 N，
// 且与 likes 表的真实数量一致
func TestToggleConcurrentDistinctUsers(t *testing.T) {
	db := newTestDB(t)
	s := NewLikeService(db)
	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author, 0)

	const n = 10
	users := make([]*models.User, n)
	for i := 0; i < n; i++ {
		users[i] = createTestUser(t, db, fmt.Sprintf("liker%02d", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(u *models.User) {
			defer wg.Done()
			liked, err := s.Toggle(u.ID, TargetPost, post.ID)
			if err != nil {
				errs <- err
				return
			}
			if !liked {
				errs <- fmt.Errorf("expected first-time like for user %d", u.ID)
			}
		}(users[i])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Concurrent toggle failed: %v", err)
	}

	if got := likesCountOfPost(t, db, post.ID); got != n {
		t.Errorf("Expected likes_count %d, got %d", n, got)
	}
	var actual int64
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&actual)
	if actual != int64(n) {
		t.Errorf("Expected %d like records, got %d", n, actual)
	}
}
