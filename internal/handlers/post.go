package handlers

import (
	"net/http"
	"songguo/internal/db"
	"songguo/internal/models"
	"songguo/internal/services"
	"songguo/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	likes     *services.LikeService
	purchases *services.PurchaseService
	notify    *services.NotificationService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		likes:     services.NewLikeService(db.DB),
		purchases: services.NewPurchaseService(db.DB),
		notify:    services.NewNotificationService(db.DB),
	}
}

// List 帖子列表 /api/posts?page=&limit=&category_id=&sort=&search=
func (h *PostHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Post{}).Where("is_published = ?", true)

	if categoryID := utils.StringToUint(c.Query("category_id")); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	switch c.DefaultQuery("sort", "latest") {
	case "popular":
		query = query.Order("likes_count DESC, created_at DESC")
	case "views":
		query = query.Order("views_count DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	query.Count(&total)

	var posts []models.Post
	if err := query.Preload("Author").Preload("Category").
		Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "帖子列表查询失败")
		return
	}

	// 列表里付费内容不返回正文
	for i := range posts {
		if posts[i].PointsRequired > 0 {
			posts[i].Content = ""
		}
	}

	OK(c, gin.H{"posts": posts, "total": total, "page": page, "limit": limit}, "")
}

// Detail 帖子详情 /api/posts/:id
// 付费帖子未购买时隐藏正文，作者和管理员不受限制。
func (h *PostHandler) Detail(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Category").
		Where("is_published = ?", true).First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "帖子不存在")
		return
	}

	// 浏览量直接在数据库里自增，不走读改写
	db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	post.ViewsCount++

	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&post.CommentCount)

	user := CurrentUser(c)
	unlocked := post.PointsRequired == 0
	if user != nil {
		post.IsLiked = h.likes.IsLiked(user.ID, services.TargetPost, post.ID)
		post.IsFavorited = isFavorited(user.ID, "post_id", post.ID)
		post.IsPurchased = h.purchases.HasPurchased(user.ID, services.TargetPost, post.ID)
		if post.IsPurchased || user.ID == post.AuthorID || user.Role == "admin" {
			unlocked = true
		}
	}

	if unlocked {
		post.ContentHTML = utils.RenderMarkdown(post.Content)
	} else {
		// 未解锁只给摘要
		post.Content = truncateRunes(post.Content, 100)
		post.ContentHTML = ""
	}

	OK(c, gin.H{"post": post}, "")
}

type createPostRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	CategoryID     *uint  `json:"category_id"`
	PointsRequired int    `json:"points_required"`
	IsPremium      bool   `json:"is_premium"`
}

// Create 发布帖子
func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}
	if req.Title == "" || req.Content == "" {
		Fail(c, http.StatusBadRequest, "标题和内容不能为空")
		return
	}
	if req.PointsRequired < 0 {
		Fail(c, http.StatusBadRequest, "解锁价格不能为负数")
		return
	}

	post := models.Post{
		AuthorID:       user.ID,
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Content:        req.Content,
		PointsRequired: req.PointsRequired,
		IsPremium:      req.IsPremium,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "发布失败")
		return
	}

	OK(c, gin.H{"post": post}, "发布成功")
}

// Update 编辑帖子，仅作者或管理员
func (h *PostHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "帖子不存在")
		return
	}
	if post.AuthorID != user.ID && user.Role != "admin" {
		Fail(c, http.StatusForbidden, "没有权限编辑该帖子")
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "请求参数格式错误")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.PointsRequired >= 0 {
		updates["points_required"] = req.PointsRequired
	}

	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "更新失败")
		return
	}

	OK(c, gin.H{"post": post}, "更新成功")
}

// Delete 删除帖子，仅作者或管理员
func (h *PostHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "帖子不存在")
		return
	}
	if post.AuthorID != user.ID && user.Role != "admin" {
		Fail(c, http.StatusForbidden, "没有权限删除该帖子")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "删除失败")
		return
	}

	OK(c, nil, "删除成功")
}

// ListComments 帖子评论列表
func (h *PostHandler) ListComments(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "评论查询失败")
		return
	}

	if user := CurrentUser(c); user != nil {
		for i := range comments {
			comments[i].IsLiked = h.likes.IsLiked(user.ID, services.TargetComment, comments[i].ID)
		}
	}

	OK(c, gin.H{"comments": comments}, "")
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment 发表评论，通知帖子作者
func (h *PostHandler) CreateComment(c *gin.Context) {
	user := CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Fail(c, http.StatusNotFound, "帖子不存在")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		Fail(c, http.StatusBadRequest, "评论内容不能为空")
		return
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  user.ID,
		Content: req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "评论发表失败")
		return
	}
	comment.User = *user

	if post.AuthorID != user.ID {
		h.notify.NotifyAsync(post.AuthorID, &user.ID, models.NotificationTypeComment,
			user.Username+" 评论了你的帖子《"+post.Title+"》")
	}

	OK(c, gin.H{"comment": comment}, "评论成功")
}

// DeleteComment 删除评论，仅评论者本人或管理员
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user := CurrentUser(c)
	commentID := utils.StringToUint(c.Param("cid"))

	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		Fail(c, http.StatusNotFound, "评论不存在")
		return
	}
	if comment.UserID != user.ID && user.Role != "admin" {
		Fail(c, http.StatusForbidden, "没有权限删除该评论")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "删除失败")
		return
	}

	OK(c, nil, "删除成功")
}

// truncateRunes 按字符数截断，避免把多字节字符截成乱码
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// isFavorited 检查用户是否已收藏
func isFavorited(userID uint, column string, targetID uint) bool {
	var favorite models.Favorite
	return db.DB.Where("user_id = ? AND "+column+" = ?", userID, targetID).First(&favorite).Error == nil
}
