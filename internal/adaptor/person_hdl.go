package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PersonHandler struct {
	service usecase.PersonService
	log     *zap.Logger
}

func NewPersonHandler(service usecase.PersonService, log *zap.Logger) *PersonHandler {
	return &PersonHandler{
		service: service,
		log:     log.With(zap.String("handler", "person")),
	}
}

// CreatePerson handles POST /api/persons (admin only)
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePersonRequest
	if !decodeBody(w, r, &req) {
		return
	}

	person, err := h.service.CreatePerson(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create person")
		return
	}

	utils.ResponseCreated(w, r, "Person created", person)
}

// GetPerson handles GET /api/persons/{id}
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.GetPerson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get person")
		return
	}

	utils.ResponseSuccess(w, r, "success", person)
}

func (h *PersonHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
