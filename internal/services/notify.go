package services

import (
	"log"
	"songguo/internal/models"

	"gorm.io/gorm"
)

// NotificationService 站内消息
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify 给用户发一条站内消息
func (s *NotificationService) Notify(userID uint, actorID *uint, notifType, content string) {
	notification := models.Notification{
		UserID:  userID,
		ActorID: actorID,
		Type:    notifType,
		Content: content,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}

// NotifyAsync 异步发消息（在请求路径外调用，失败只记日志）
func (s *NotificationService) NotifyAsync(userID uint, actorID *uint, notifType, content string) {
	go s.Notify(userID, actorID, notifType, content)
}
