package discussion

import (
	"net/http"

	"dronline/infras/otel"
	"dronline/internal/domains/discussion/model"
	"dronline/internal/domains/discussion/model/dto"
	"dronline/internal/domains/discussion/service"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	"dronline/shared/validator"
	"dronline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Discussion
	otel    otel.Otel
}

func New(service service.Discussion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/discussions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDiscussion)
		routerGroup.Get("/", handler.GetDiscussions)
		routerGroup.Get("/{id}", handler.GetDiscussionByID)
		routerGroup.Patch("/{id}", handler.UpdateDiscussion)
		routerGroup.Delete("/{id}", handler.DeleteDiscussion)
		routerGroup.Post("/{id}/reply", handler.AddReply)
		routerGroup.Post("/{id}/like", handler.ToggleLike)
	})
}

// CreateDiscussion creates a new discussion thread.
// @Summary Create a discussion
// @Description Create a new discussion thread.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param request body dto.CreateDiscussionRequest true "Create Discussion Request"
// @Success 201 {object} response.Data[dto.DiscussionResponse] "Discussion created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions [post]
// @Security BearerAuth
func (handler *Handler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDiscussion")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateDiscussionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create discussion")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussion created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDiscussions retrieves all discussions based on query parameters.
// @Summary Get all discussions
// @Description Retrieve all discussions with optional filtering and pagination.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category (general, research, questions, experiences)"
// @Param status query string false "Filter by status (open, closed, resolved)"
// @Param search query string false "Search in titles"
// @Success 200 {object} response.Data[dto.GetDiscussionsResponse] "List of discussions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions [get]
func (handler *Handler) GetDiscussions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDiscussions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)
	status := r.URL.Query().Get(model.FieldStatus)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	discussions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get discussions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussions retrieved successfully")

	response.WithJSON(w, http.StatusOK, discussions)
}

// GetDiscussionByID retrieves a discussion with its replies.
// @Summary Get a discussion by ID
// @Description Retrieve a discussion and its replies. Increments the view counter.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Success 200 {object} response.Data[dto.DiscussionDetailResponse] "Discussion details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions/{id} [get]
func (handler *Handler) GetDiscussionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDiscussionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	discussion, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get discussion by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussion retrieved successfully")

	response.WithJSON(w, http.StatusOK, discussion)
}

// UpdateDiscussion updates an existing discussion.
// @Summary Update a discussion by ID
// @Description Update a discussion. Only the author or an admin may update.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Param request body dto.UpdateDiscussionRequest true "Update Discussion Request"
// @Success 200 {object} response.Data[dto.DiscussionResponse] "Discussion updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDiscussion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDiscussion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDiscussionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update discussion")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussion updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteDiscussion deletes a discussion and its replies.
// @Summary Delete a discussion by ID
// @Description Delete a discussion. Only the author or an admin may delete.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Success 200 {object} response.Message "Discussion deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDiscussion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDiscussion")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete discussion")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Discussion deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Discussion deleted successfully")
}

// AddReply appends a reply to a discussion.
// @Summary Reply to a discussion
// @Description Add a reply to the discussion thread.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Param request body dto.AddReplyRequest true "Add Reply Request"
// @Success 201 {object} response.Data[dto.ReplyResponse] "Reply added successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions/{id}/reply [post]
// @Security BearerAuth
func (handler *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddReply")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddReplyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddReply(ctx, id, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add discussion reply")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussion reply added successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// ToggleLike toggles the caller's like on a discussion.
// @Summary Toggle a discussion like
// @Description Add or remove the caller's like on the discussion.
// @Tags Discussion
// @Accept json
// @Produce json
// @Param id path string true "Discussion ID"
// @Success 200 {object} response.Data[dto.ToggleLikeResponse] "Like toggled successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/discussions/{id}/like [post]
// @Security BearerAuth
func (handler *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleLike")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ToggleLike(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle discussion like")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discussion like toggled successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}
