package service

import (
	"context"
	"fmt"

	"dronline/config"
	"dronline/infras/kafka"
	"dronline/infras/otel"
	"dronline/infras/postgres"
	bookingModel "dronline/internal/domains/booking/model"
	bookingRepo "dronline/internal/domains/booking/repository"
	"dronline/internal/domains/contact/model"
	"dronline/internal/domains/contact/model/dto"
	"dronline/internal/domains/contact/repository"
	notifModel "dronline/internal/domains/notification/model"
	notifRepo "dronline/internal/domains/notification/repository"
	"dronline/internal/domains/notification/template"
	userModel "dronline/internal/domains/user/model"
	userRepo "dronline/internal/domains/user/repository"
	"dronline/shared"
	"dronline/shared/cache"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllContact = "contact:gets"
	cacheCountContact  = "contact:count"
)

const (
	EventSubmitted         = "contact.submitted"
	EventModeratorAssigned = "contact.moderator-assigned"
	EventDoctorAssigned    = "contact.doctor-assigned"
	EventStatusUpdated     = "contact.status-updated"
)

type Contact interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, callerID, callerEmail string) (dto.GetContactsResponse, error)
	Get(ctx context.Context, id string) (dto.ContactDetailResponse, error)
	AssignModerator(ctx context.Context, id string) (dto.BookModeratorResponse, error)
	AssignDoctor(ctx context.Context, id string, req dto.AssignDoctorRequest) (dto.ContactResponse, error)
	AddReply(ctx context.Context, id string, req dto.AddReplyRequest, senderID string) (dto.ReplyResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo        repository.Contact
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
	notifRepo   notifRepo.Notification
	txer        postgres.Transactor
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Contact,
	bookingRepo bookingRepo.Booking,
	userRepo userRepo.User,
	notifRepo notifRepo.Notification,
	txer postgres.Transactor,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Contact {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		txer:        txer,
		kafka:       kafkaClient,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// selectModerator picks the first candidate in directory order. Deliberately
// not a fair scheduler; swap this function out to change the policy.
func selectModerator(candidates []userModel.User) (userModel.User, bool) {
	if len(candidates) == 0 {
		return userModel.User{}, false
	}

	return candidates[0], true
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if username == constant.Empty {
		username = constant.ContextGuest
	}

	request := req.ToModel(username)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create contact request")

		return res, fmt.Errorf("failed to create contact request: %w", err)
	}

	res.FromModel(request)

	s.publishEvent(ctx, EventSubmitted, request.ID, request.Status)
	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact requests")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact requests")

		return res, fmt.Errorf("failed to get contact requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact requests")

		return res, fmt.Errorf("failed to count contact requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact request count to cache")
		}
	}()

	return res, nil
}

// GetMine returns requests the caller submitted, matched by patient reference
// or by the email on the request. Anonymous submissions claimed later by a
// registered account still show up via the email match.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, callerID, callerEmail string) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPatientID,
				Operator: gDto.FilterOperatorEq,
				Value:    callerID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "caller_email",
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    callerEmail,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact requests")

		return res, fmt.Errorf("failed to count contact requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact requests")

		return res, fmt.Errorf("failed to get contact requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact request")

		return res, fmt.Errorf("failed to get contact request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("contact request not found")
	}

	replyParams := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	replies, err := s.repo.GetReplies(ctx, replyParams, shared.FilterByID(id, model.ReplyFieldRequestID, model.ReplyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact request replies")

		return res, fmt.Errorf("failed to get contact request replies: %w", err)
	}

	res.FromModels(request, replies)

	return res, nil
}

func (s *serviceImpl) AssignModerator(ctx context.Context, id string) (res dto.BookModeratorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignModerator")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact request")

		return res, fmt.Errorf("failed to get contact request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("contact request not found")
	}

	moderator, found, err := s.findModerator(ctx)
	if err != nil {
		return res, err
	}

	if !found {
		return res, failure.BadRequestFromString("no moderators available")
	}

	patientID, err := s.resolvePatient(ctx, request)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	booking := bookingModel.ModeratorBooking{
		ID:               uuid.NewString(),
		PatientID:        patientID,
		ModeratorID:      moderator.ID,
		ContactRequestID: request.ID,
		Topic:            request.Subject,
		Status:           bookingModel.StatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	bookedSubject, bookedBody := template.ModeratorBooked(request.FullName)
	assignSubject, assignBody := template.ModeratorAssignment(contactDetails(request))

	notifications := []notifModel.Notification{
		newOutboxEntry(request.Email, bookedSubject, bookedBody, actor),
		newOutboxEntry(moderator.Email, assignSubject, assignBody, actor),
	}

	updatedFields := map[string]any{
		model.FieldModeratorID:   moderator.ID,
		model.FieldStatus:        model.StatusModeratorAssigned,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	// Request update, booking insert and notification enqueue commit or roll
	// back together. The relay delivers the emails after commit.
	err = s.txer.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.notifRepo.InsertBulkTx(ctx, tx, notifications)
	})
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Msg("failed to assign moderator")

		return res, fmt.Errorf("failed to assign moderator: %w", err)
	}

	request.ModeratorID = &moderator.ID
	request.ModeratorName = &moderator.FullName
	request.ModeratorEmail = &moderator.Email
	request.Status = model.StatusModeratorAssigned
	request.ModifiedAt = now
	request.ModifiedBy = actor

	res.Request.FromModel(request)
	res.Booking.FromModel(booking)

	s.publishEvent(ctx, EventModeratorAssigned, request.ID, request.Status)
	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) findModerator(ctx context.Context) (userModel.User, bool, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.RoleAdmin, constant.RoleDoctor},
				Table:    userModel.TableName,
			},
		},
	}

	candidates, err := s.userRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to query moderator candidates")

		return userModel.User{}, false, fmt.Errorf("failed to query moderator candidates: %w", err)
	}

	moderator, found := selectModerator(candidates)

	return moderator, found, nil
}

// resolvePatient prefers the patient reference on the request, falling back to
// an email match in the user directory. A nil result is a valid outcome for
// anonymous submissions.
func (s *serviceImpl) resolvePatient(ctx context.Context, request model.ContactRequest) (*string, error) {
	if request.PatientID != nil {
		return request.PatientID, nil
	}

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    request.Email,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve patient by email")

		return nil, fmt.Errorf("failed to resolve patient by email: %w", err)
	}

	if user.ID == constant.Empty {
		return nil, nil
	}

	return &user.ID, nil
}

func (s *serviceImpl) AssignDoctor(ctx context.Context, id string, req dto.AssignDoctorRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignDoctor")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact request")

		return res, fmt.Errorf("failed to get contact request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("contact request not found")
	}

	doctor, err := s.userRepo.Get(ctx, shared.FilterByID(req.DoctorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty || doctor.Role != constant.RoleDoctor {
		return res, failure.BadRequestFromString("assigned user is not a doctor")
	}

	now := timezone.Now()
	referralSubject, referralBody := template.DoctorReferral(contactDetails(request))
	notification := newOutboxEntry(doctor.Email, referralSubject, referralBody, actor)

	updatedFields := map[string]any{
		model.FieldDoctorID:      doctor.ID,
		model.FieldStatus:        model.StatusDoctorAssigned,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	err = s.txer.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.notifRepo.InsertTx(ctx, tx, notification)
	})
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Msg("failed to assign doctor")

		return res, fmt.Errorf("failed to assign doctor: %w", err)
	}

	request.DoctorID = &doctor.ID
	request.DoctorName = &doctor.FullName
	request.DoctorEmail = &doctor.Email
	request.Status = model.StatusDoctorAssigned
	request.ModifiedAt = now
	request.ModifiedBy = actor

	res.FromModel(request)

	s.publishEvent(ctx, EventDoctorAssigned, request.ID, request.Status)
	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) AddReply(ctx context.Context, id string, req dto.AddReplyRequest, senderID string) (res dto.ReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddReply")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check contact request existence")

		return res, fmt.Errorf("failed to check contact request existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("contact request not found")
	}

	// Sender role is resolved fresh and copied onto the reply so later role
	// changes don't rewrite the conversation history.
	sender, err := s.userRepo.Get(ctx, shared.FilterByID(senderID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reply sender")

		return res, fmt.Errorf("failed to get reply sender: %w", err)
	}

	if sender.ID == constant.Empty {
		return res, failure.NotFound("user not found")
	}

	reply := req.ToModel(id, sender.ID, sender.Role)

	if err = s.repo.InsertReply(ctx, reply); err != nil {
		log.Error().Err(err).Msg("failed to add reply")

		return res, fmt.Errorf("failed to add reply: %w", err)
	}

	reply.SenderName = &sender.FullName
	res.FromModel(reply)

	return res, nil
}

// UpdateStatus sets any of the five statuses without a transition check.
// Admins can jump or reopen freely; the status graph is advisory.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check contact request existence")

		return fmt.Errorf("failed to check contact request existence: %w", err)
	}

	if !exist {
		return failure.NotFound("contact request not found")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update contact request status")

		return fmt.Errorf("failed to update contact request status: %w", err)
	}

	s.publishEvent(ctx, EventStatusUpdated, id, req.Status)
	s.invalidateListCaches(ctx)

	return nil
}

type lifecycleEvent struct {
	Event      string `json:"event"`
	RequestID  string `json:"request_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// publishEvent emits a lifecycle event after the state change is durable.
// Fire and forget: consumers are downstream analytics, not the write path.
func (s *serviceImpl) publishEvent(ctx context.Context, event, requestID, status string) {
	topic := s.cfg.Kafka.ContactTopic
	if topic == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: requestID,
			Value: lifecycleEvent{
				Event:      event,
				RequestID:  requestID,
				Status:     status,
				OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
			},
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish lifecycle event")
		}
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
		shared.InvalidateCaches(c, s.cache, cacheCountContact)
	}()
}

func contactDetails(request model.ContactRequest) template.ContactDetails {
	return template.ContactDetails{
		FullName:    request.FullName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Subject:     request.Subject,
		Message:     request.Message,
	}
}

func newOutboxEntry(recipient, subject, body, createdBy string) notifModel.Notification {
	now := timezone.Now()

	return notifModel.Notification{
		ID:        uuid.NewString(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Status:    notifModel.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}
