package tag

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meeplebay/meeplebay/internal/platform/middleware"
	requestutil "github.com/meeplebay/meeplebay/internal/platform/request"
	"github.com/meeplebay/meeplebay/internal/platform/respond"
	"github.com/meeplebay/meeplebay/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTags)
	router.Get("/{id}", handler.getTag)
	router.Get("/by-slug/{slug}", handler.getTagBySlug)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createTag)
		admin.Patch("/{id}", handler.updateTag)
		admin.Delete("/{id}", handler.deleteTag)
	})
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	catalog, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, catalog)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	idStr := requestutil.ID(request, "id")
	tagID, err := strconv.Atoi(idStr)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.GetTag(request.Context(), tagID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) getTagBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	tag, err := handler.service.GetTagBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

type tagRequest struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var input tagRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag := &Tag{
		Kind:        Kind(input.Kind),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.CreateTag(request.Context(), tag); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}

func (handler *Handler) updateTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input tagRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag := &Tag{
		ID:          tagID,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.UpdateTag(request.Context(), tag); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	tagID, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTag(request.Context(), tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
