package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// Upcoming handles GET /api/notifications/upcoming
func (h *NotificationHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Upcoming(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get upcoming movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// SetReminder handles POST /api/notifications/reminder (protected)
func (h *NotificationHandler) SetReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.SetReminderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reminder, err := h.service.SetReminder(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "set reminder")
		return
	}

	utils.ResponseCreated(w, r, "Reminder set", reminder)
}

// Dashboard handles GET /api/notifications/dashboard (protected)
func (h *NotificationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	reminders, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err, "get notification dashboard")
		return
	}

	utils.ResponseSuccess(w, r, "success", reminders)
}

// NotifyUpcoming handles POST /api/movies/upcoming/notify (admin only).
// Emails go out in the background, so this answers 202.
func (h *NotificationHandler) NotifyUpcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.NotifyUpcoming(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "notify upcoming movies")
		return
	}

	utils.ResponseJSON(w, r, http.StatusAccepted, true, "Notifications queued", result, nil)
}

func (h *NotificationHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
