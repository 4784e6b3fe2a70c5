package db

import (
	"log"
	"os"
	"songguo/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=songguo port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	// TranslateError 让唯一索引冲突统一成 gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
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
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial categories
	seedCategories()
}

func seedCategories() {
	// 检查是否已有分类数据
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	// 创建预设分类
	categories := []models.Category{
		{Name: "编程开发", Description: "编程教程、源码分享", Color: "#3b82f6", SortOrder: 1},
		{Name: "设计素材", Description: "设计模板、图片素材", Color: "#ec4899", SortOrder: 2},
		{Name: "学习资料", Description: "课程笔记、电子书", Color: "#22c55e", SortOrder: 3},
		{Name: "经验分享", Description: "职场与生活经验", Color: "#f59e0b", SortOrder: 4},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created successfully")
}
