package study

import (
	"net/http"

	"dronline/infras/otel"
	"dronline/internal/domains/study/model"
	"dronline/internal/domains/study/model/dto"
	"dronline/internal/domains/study/service"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	"dronline/shared/validator"
	"dronline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Study
	otel    otel.Otel
}

func New(service service.Study, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/studies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStudy)
		routerGroup.Get("/", handler.GetStudies)
		routerGroup.Get("/{id}", handler.GetStudyByID)
		routerGroup.Patch("/{id}", handler.UpdateStudy)
		routerGroup.Delete("/{id}", handler.DeleteStudy)
		routerGroup.Post("/{id}/like", handler.ToggleLike)
		routerGroup.Post("/{id}/share", handler.Share)
		routerGroup.Post("/{id}/attachments", handler.UploadAttachment)
	})
}

// CreateStudy publishes a new medical study post.
// @Summary Create a study
// @Description Publish a new study. Only doctors and admins may publish.
// @Tags Study
// @Accept json
// @Produce json
// @Param request body dto.CreateStudyRequest true "Create Study Request"
// @Success 201 {object} response.Data[dto.StudyResponse] "Study created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies [post]
// @Security BearerAuth
func (handler *Handler) CreateStudy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStudy")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateStudyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create study")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Study created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStudies retrieves all studies based on query parameters.
// @Summary Get all studies
// @Description Retrieve all studies with optional filtering and pagination.
// @Tags Study
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param condition query string false "Filter by medical condition"
// @Param search query string false "Search in titles"
// @Success 200 {object} response.Data[dto.GetStudiesResponse] "List of studies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies [get]
func (handler *Handler) GetStudies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	condition := r.URL.Query().Get(model.FieldCondition)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if condition != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCondition,
			Operator: gDto.FilterOperatorEq,
			Value:    condition,
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

	studies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get studies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Studies retrieved successfully")

	response.WithJSON(w, http.StatusOK, studies)
}

// GetStudyByID retrieves a study with its attachments.
// @Summary Get a study by ID
// @Description Retrieve a study and its attachments.
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study ID"
// @Success 200 {object} response.Data[dto.StudyDetailResponse] "Study details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id} [get]
func (handler *Handler) GetStudyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	study, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get study by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Study retrieved successfully")

	response.WithJSON(w, http.StatusOK, study)
}

// UpdateStudy updates an existing study.
// @Summary Update a study by ID
// @Description Update a study. Only the author or an admin may update.
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study ID"
// @Param request body dto.UpdateStudyRequest true "Update Study Request"
// @Success 200 {object} response.Data[dto.StudyResponse] "Study updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStudy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStudy")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStudyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update study")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Study updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteStudy deletes a study and its attachments.
// @Summary Delete a study by ID
// @Description Delete a study. Only the author or an admin may delete.
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study ID"
// @Success 200 {object} response.Message "Study deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStudy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStudy")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete study")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Study deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Study deleted successfully")
}

// ToggleLike toggles the caller's like on a study.
// @Summary Toggle a study like
// @Description Add or remove the caller's like on the study.
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study ID"
// @Success 200 {object} response.Data[dto.ToggleLikeResponse] "Like toggled successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id}/like [post]
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
		log.Error().Err(err).Msg("failed to toggle study like")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Study like toggled successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// Share increments the share counter for a study.
// @Summary Share a study
// @Description Record a share of the study and return the new count.
// @Tags Study
// @Accept json
// @Produce json
// @Param id path string true "Study ID"
// @Success 200 {object} response.Data[int] "Share recorded successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id}/share [post]
func (handler *Handler) Share(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Share")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	shares, err := handler.service.Share(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record study share")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Study share recorded successfully")

	response.WithJSON(w, http.StatusOK, shares)
}

// UploadAttachment attaches a file to the study.
// @Summary Upload a study attachment
// @Description Upload an attachment for the study via multipart form.
// @Tags Study
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Study ID"
// @Param file formData file true "Attachment to upload"
// @Success 201 {object} response.Data[dto.AttachmentResponse] "Attachment uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/studies/{id}/attachments [post]
// @Security BearerAuth
func (handler *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAttachment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadAttachmentRequest{
		Attachment:     fileHeader,
		AttachmentFile: file,
	}

	res, err := handler.service.UploadAttachment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload study attachment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Study attachment uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}
