package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCommunity(
	r chi.Router,
	listHandler *adaptor.ListHandler,
	discussionHandler *adaptor.DiscussionHandler,
	deps routeDeps,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/lists", listHandler.GetLists)
	r.Get("/lists/{id}", listHandler.GetList)
	r.Get("/discussions", discussionHandler.GetDiscussions)
	r.Get("/discussions/{id}", discussionHandler.GetDiscussion)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		// Owner checks happen in the service
		r.Post("/lists", listHandler.CreateList)
		r.Put("/lists/{id}", listHandler.UpdateList)
		r.Delete("/lists/{id}", listHandler.DeleteList)
		r.Post("/lists/{id}/follow", listHandler.FollowList)
		r.Post("/lists/{id}/unfollow", listHandler.UnfollowList)

		r.Post("/discussions", discussionHandler.CreateDiscussion)
		r.Post("/discussions/{id}/replies", discussionHandler.AddReply)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)
		r.Use(deps.admin)

		r.Delete("/discussions/{id}", discussionHandler.DeleteDiscussion)
		r.Delete("/discussions/{id}/replies/{replyId}", discussionHandler.DeleteReply)
	})
}
