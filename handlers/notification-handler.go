package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"zenith-project/backend/middleware"
	"zenith-project/backend/services"
)

type NotificationHandler struct {
	NotificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: notificationService}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationService.GetNotificationsForUser(claims.UserID)
	if err != nil {
		http.Error(w, "Failed to fetch notifications", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// createdAt stiže kao query parametar jer je deo klaster ključa u Cassandri.
func createdAtParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("createdAt"), 10, 64)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}
	notificationID := mux.Vars(r)["notificationId"]

	createdAt, err := createdAtParam(r)
	if err != nil {
		http.Error(w, "createdAt query parameter is required", http.StatusBadRequest)
		return
	}

	if err := h.NotificationService.MarkNotificationAsRead(claims.UserID, notificationID, createdAt); err != nil {
		http.Error(w, "Failed to mark notification as read", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}
	notificationID := mux.Vars(r)["notificationId"]

	createdAt, err := createdAtParam(r)
	if err != nil {
		http.Error(w, "createdAt query parameter is required", http.StatusBadRequest)
		return
	}

	if err := h.NotificationService.DeleteNotification(claims.UserID, notificationID, createdAt); err != nil {
		http.Error(w, "Failed to delete notification", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
