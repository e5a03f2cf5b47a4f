package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "register")
		return
	}

	utils.ResponseCreated(w, r, "Registration successful", resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "login")
		return
	}

	utils.ResponseSuccess(w, r, "Login successful", resp)
}

// GetProfile handles GET /api/auth/profile (protected)
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, r, "success", profile)
}

// UpdateProfile handles PUT /api/auth/profile (protected)
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, r, "Profile updated", profile)
}

// AddToWishlist handles POST /api/auth/wishlist/{movieId} (protected)
func (h *AuthHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.AddToWishlist(r.Context(), userID, chi.URLParam(r, "movieId")); err != nil {
		h.handleServiceError(w, r, err, "add to wishlist")
		return
	}

	utils.ResponseSuccess(w, r, "Movie added to wishlist", nil)
}

// RemoveFromWishlist handles DELETE /api/auth/wishlist/{movieId} (protected)
func (h *AuthHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFromWishlist(r.Context(), userID, chi.URLParam(r, "movieId")); err != nil {
		h.handleServiceError(w, r, err, "remove from wishlist")
		return
	}

	utils.ResponseSuccess(w, r, "Movie removed from wishlist", nil)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
