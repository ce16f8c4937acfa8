package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/ws"
)

// GET /user/notifications
func GetNotifications(c *gin.Context) {
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))
	db := c.MustGet("db").(*gorm.DB)

	var list []models.Notification
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /user/notifications/unread-count
func GetUnreadCount(c *gin.Context) {
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))
	db := c.MustGet("db").(*gorm.DB)

	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", userID).Count(&count)
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// PATCH /user/notifications/:id/read
func MarkNotificationAsRead(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var notif models.Notification
	if err := db.First(&notif, "id = ? AND user_id = ?", notificationID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	now := time.Now()
	if err := db.Model(&notif).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	pushBadge(db, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// PATCH /user/notifications/read-all
func MarkAllAsRead(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	now := time.Now()
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark all read"})
		return
	}

	ws.SendBadgeUpdate(userID.String(), 0)
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DELETE /user/notifications/:id
func DeleteNotification(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var notif models.Notification
	if err := db.First(&notif, "id = ? AND user_id = ?", notifID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if err := db.Delete(&notif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	pushBadge(db, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

// DELETE /user/notifications
func DeleteAllNotifications(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	if err := db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notifications"})
		return
	}

	ws.SendBadgeUpdate(userID.String(), 0)
	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted successfully"})
}

// DELETE /user/notifications/read — clears read ones, keeps unread
func DeleteReadNotifications(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr, _ := c.Get("user_id")
	userID, _ := uuid.Parse(userIDStr.(string))

	if err := db.Where("user_id = ? AND is_read = true", userID).
		Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete read notifications"})
		return
	}

	pushBadge(db, userID)
	c.JSON(http.StatusOK, gin.H{"message": "All read notifications deleted successfully"})
}

type CreateNotificationInput struct {
	UserID     uuid.UUID `json:"user_id" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Message    string    `json:"message" binding:"required"`
	Type       string    `json:"type"`
	RelatedURL *string   `json:"related_url"`
}

// POST /admin/notifications
func CreateNotification(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, title and message are required"})
		return
	}

	notif := models.Notification{
		UserID:     input.UserID,
		Title:      input.Title,
		Message:    input.Message,
		Type:       input.Type,
		RelatedURL: input.RelatedURL,
	}
	if notif.Type == "" {
		notif.Type = "system"
	}

	if err := db.Create(&notif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create notification"})
		return
	}

	pushBadge(db, input.UserID)
	c.JSON(http.StatusCreated, gin.H{"notification": notif})
}

func pushBadge(db *gorm.DB, userID uuid.UUID) {
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", userID).Count(&count)
	ws.SendBadgeUpdate(userID.String(), count)
}
