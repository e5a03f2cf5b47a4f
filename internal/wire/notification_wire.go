package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotification(r chi.Router, notificationHandler *adaptor.NotificationHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/notifications/upcoming", notificationHandler.Upcoming)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		r.Post("/notifications/reminder", notificationHandler.SetReminder)
		r.Get("/notifications/dashboard", notificationHandler.Dashboard)
	})
}
