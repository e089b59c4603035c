package contact

import (
	"net/http"

	"dronline/infras/otel"
	"dronline/internal/domains/contact/model"
	"dronline/internal/domains/contact/model/dto"
	"dronline/internal/domains/contact/service"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	"dronline/shared/validator"
	"dronline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitContact)
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/mine", handler.GetMyContacts)
		routerGroup.Get("/{id}", handler.GetContactByID)
		routerGroup.Post("/{id}/book-moderator", handler.BookModerator)
		routerGroup.Post("/{id}/assign-doctor", handler.AssignDoctor)
		routerGroup.Post("/{id}/reply", handler.AddReply)
		routerGroup.Put("/{id}/status", handler.UpdateStatus)
	})
}

// SubmitContact creates a new contact request. No authentication required,
// so visitors can reach out before registering.
// @Summary Submit a contact request
// @Description Submit a new contact request for triage.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Submit Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse] "Contact request submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.SubmitContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact request submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetContacts retrieves all contact requests based on query parameters.
// @Summary Get all contact requests
// @Description Retrieve all contact requests with optional filtering and pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, acknowledged, moderator-assigned, doctor-assigned, resolved)"
// @Param request_type query string false "Filter by request type (consultation, question, feedback, booking)"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	requestType := r.URL.Query().Get(model.FieldRequestType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if requestType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRequestType,
			Operator: gDto.FilterOperatorEq,
			Value:    requestType,
			Table:    model.TableName,
		})
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetMyContacts retrieves contact requests for the authenticated caller.
// @Summary Get my contact requests
// @Description Retrieve contact requests submitted by the authenticated user.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of the caller's contact requests"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyContacts")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	userEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	contacts, err := handler.service.GetMine(ctx, queryParams, userID, userEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user contact requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User contact requests retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetContactByID retrieves a contact request with its replies.
// @Summary Get a contact request by ID
// @Description Retrieve a contact request and its reply thread.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Request ID"
// @Success 200 {object} response.Data[dto.ContactDetailResponse] "Contact request details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact request retrieved successfully")

	response.WithJSON(w, http.StatusOK, contact)
}

// BookModerator assigns a moderator to the contact request and creates
// the corresponding booking.
// @Summary Book a moderator for a contact request
// @Description Assign an available moderator to the contact request, create a booking and queue notification emails.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Request ID"
// @Success 200 {object} response.Data[dto.BookModeratorResponse] "Moderator booked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id}/book-moderator [post]
// @Security BearerAuth
func (handler *Handler) BookModerator(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookModerator")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.AssignModerator(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book moderator")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Moderator booked successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// AssignDoctor refers the contact request to a specific doctor.
// @Summary Assign a doctor to a contact request
// @Description Refer the contact request to the given doctor and queue the referral email.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Request ID"
// @Param request body dto.AssignDoctorRequest true "Assign Doctor Request"
// @Success 200 {object} response.Data[dto.ContactResponse] "Doctor assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id}/assign-doctor [post]
// @Security BearerAuth
func (handler *Handler) AssignDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignDoctor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AssignDoctorRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AssignDoctor(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign doctor")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Doctor assigned successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// AddReply appends a reply to the contact request thread.
// @Summary Reply to a contact request
// @Description Add a reply to the contact request conversation.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Request ID"
// @Param request body dto.AddReplyRequest true "Add Reply Request"
// @Success 201 {object} response.Data[dto.ReplyResponse] "Reply added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id}/reply [post]
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
		log.Error().Err(err).Msg("failed to add reply")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reply added successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateStatus sets the status of a contact request.
// @Summary Update contact request status
// @Description Set the contact request to any of the known statuses.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Request ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact request status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact request status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Status updated successfully")
}
