package services

import (
	"fmt"
	"time"

	"zenith-project/backend/models"
	"zenith-project/backend/repositories"
)

type NotificationService struct {
	repo *repositories.NotificationRepo
}

func NewNotificationService(repo *repositories.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

// Kreiranje nove notifikacije
func (ns *NotificationService) CreateNotification(userID, username, message string) error {
	if userID == "" || message == "" {
		return fmt.Errorf("userID and message are required")
	}
	notification := models.Notification{
		UserID:    userID,
		Username:  username,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}
	return ns.repo.CreateNotification(&notification)
}

// Dohvatanje svih notifikacija za korisnika
func (ns *NotificationService) GetNotificationsForUser(userID string) ([]models.Notification, error) {
	return ns.repo.GetNotificationsByUserID(userID)
}

// Označavanje notifikacije kao pročitane
func (ns *NotificationService) MarkNotificationAsRead(userID, notificationID string, createdAt int64) error {
	if userID == "" || notificationID == "" {
		return fmt.Errorf("userID and notificationID are required")
	}
	return ns.repo.MarkNotificationAsRead(userID, notificationID, createdAt)
}

// Brisanje notifikacije
func (ns *NotificationService) DeleteNotification(userID, notificationID string, createdAt int64) error {
	return ns.repo.DeleteNotification(userID, notificationID, createdAt)
}
