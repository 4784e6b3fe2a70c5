package router

import (
	"songguo/internal/handlers"
	"songguo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	resourceHandler := handlers.NewResourceHandler()
	likeHandler := handlers.NewLikeHandler()
	pointsHandler := handlers.NewPointsHandler()
	purchaseHandler := handlers.NewPurchaseHandler()
	categoryHandler := handlers.NewCategoryHandler()
	searchHandler := handlers.NewSearchHandler()
	favoriteHandler := handlers.NewFavoriteHandler()
	notificationHandler := handlers.NewNotificationHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.POST("/auth/register", authHandler.Register) // 注册
	api.POST("/auth/login", authHandler.Login)       // 登录
	api.POST("/auth/logout", authHandler.Logout)     // 退出登录
	api.GET("/auth/me", authHandler.Me)              // 当前用户信息

	api.GET("/categories", categoryHandler.List)         // 分类列表
	api.GET("/posts", postHandler.List)                  // 帖子列表
	api.GET("/posts/:id", postHandler.Detail)            // 帖子详情
	api.GET("/posts/:id/comments", postHandler.ListComments) // 评论列表
	api.GET("/resources", resourceHandler.List)          // 资源列表
	api.GET("/resources/:id", resourceHandler.Detail)    // 资源详情
	api.GET("/search", searchHandler.Search)             // 全站搜索
	api.GET("/points/packages", pointsHandler.Packages)  // 充值档位

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts", postHandler.Create)                  // 发布帖子
		authorized.PUT("/posts/:id", postHandler.Update)               // 编辑帖子
		authorized.DELETE("/posts/:id", postHandler.Delete)            // 删除帖子
		authorized.POST("/posts/:id/comments", postHandler.CreateComment) // 发表评论
		authorized.DELETE("/comments/:cid", postHandler.DeleteComment) // 删除评论

		authorized.POST("/resources", resourceHandler.Create)          // 发布资源
		authorized.POST("/resources/:id/download", resourceHandler.Download) // 下载资源

		authorized.POST("/likes", likeHandler.Toggle)         // 点赞/取消点赞
		authorized.POST("/favorites", favoriteHandler.Toggle) // 收藏/取消收藏
		authorized.GET("/favorites", favoriteHandler.List)    // 我的收藏

		authorized.GET("/points/history", pointsHandler.History)  // 积分流水
		authorized.POST("/points/recharge", pointsHandler.Recharge) // 充值松果

		authorized.POST("/purchases", purchaseHandler.Unlock) // 解锁付费内容
		authorized.GET("/purchases", purchaseHandler.List)    // 我的购买记录

		authorized.GET("/notifications", notificationHandler.List)             // 我的消息
		authorized.POST("/notifications/:id/read", notificationHandler.Read)   // 标记已读
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll) // 全部已读
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)    // 删除消息
	}

	// 管理后台路由 (Admin Routes)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)           // 用户列表
		admin.PUT("/users/:id/role", adminHandler.UpdateRole) // 修改角色
	}
}
