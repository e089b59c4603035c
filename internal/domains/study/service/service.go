package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dronline/config"
	"dronline/infras/otel"
	"dronline/infras/s3"
	"dronline/internal/domains/study/model"
	"dronline/internal/domains/study/model/dto"
	"dronline/internal/domains/study/repository"
	"dronline/shared"
	"dronline/shared/cache"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	"dronline/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllStudy = "study:gets"
	cacheCountStudy  = "study:count"
)

type Study interface {
	Create(ctx context.Context, req dto.CreateStudyRequest, authorID string) (dto.StudyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudiesResponse, error)
	Get(ctx context.Context, id string) (dto.StudyDetailResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateStudyRequest) (dto.StudyResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (dto.ToggleLikeResponse, error)
	Share(ctx context.Context, id string) (int, error)
	UploadAttachment(ctx context.Context, id string, req dto.UploadAttachmentRequest) (dto.AttachmentResponse, error)
}

type serviceImpl struct {
	repo  repository.Study
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Study, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Study {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStudyRequest, authorID string) (res dto.StudyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleDoctor && role != constant.RoleAdmin {
		return res, failure.Forbidden("only doctors and admins can publish studies")
	}

	study := req.ToModel(authorID)

	if err = s.repo.Insert(ctx, study); err != nil {
		log.Error().Err(err).Msg("failed to create study")

		return res, fmt.Errorf("failed to create study: %w", err)
	}

	res.FromModel(study)

	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStudy, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for studies")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get studies")

		return res, fmt.Errorf("failed to get studies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save studies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStudy, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count studies")

		return res, fmt.Errorf("failed to count studies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save study count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StudyDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	study, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study")

		return res, fmt.Errorf("failed to get study: %w", err)
	}

	if study.ID == constant.Empty {
		return res, failure.NotFound("study not found")
	}

	attachmentParams := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	attachments, err := s.repo.GetAttachments(ctx, attachmentParams, shared.FilterByID(id, model.AttachmentFieldStudyID, model.AttachmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study attachments")

		return res, fmt.Errorf("failed to get study attachments: %w", err)
	}

	res.FromModels(study, attachments)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateStudyRequest) (res dto.StudyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.authorizeMutation(ctx, id); err != nil {
		return res, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, actor)

	if len(req.Tags) > 0 {
		updatedFields[model.FieldTags] = pq.StringArray(req.Tags)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update study")

		return res, fmt.Errorf("failed to update study: %w", err)
	}

	study, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study")

		return res, fmt.Errorf("failed to get study: %w", err)
	}

	res.FromModel(study)

	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.authorizeMutation(ctx, id); err != nil {
		return err
	}

	attachmentFilter := shared.FilterByID(id, model.AttachmentFieldStudyID, model.AttachmentTableName)

	attachments, err := s.repo.GetAttachments(ctx, gDto.QueryParams{}, attachmentFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get study attachments")

		return fmt.Errorf("failed to get study attachments: %w", err)
	}

	if err = s.repo.DeleteAttachments(ctx, attachmentFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete study attachments")

		return fmt.Errorf("failed to delete study attachments: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete study")

		return fmt.Errorf("failed to delete study: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName
	for _, attachment := range attachments {
		objectName := s.s3.GetObjectNameFromURL(bucketName, attachment.URL)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) authorizeMutation(ctx context.Context, id string) (model.Study, error) {
	study, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study")

		return study, fmt.Errorf("failed to get study: %w", err)
	}

	if study.ID == constant.Empty {
		return study, failure.NotFound("study not found")
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if actor != study.AuthorID && role != constant.RoleAdmin {
		return study, failure.Forbidden("only the author or an admin can modify this study")
	}

	return study, nil
}

func (s *serviceImpl) ToggleLike(ctx context.Context, id, userID string) (res dto.ToggleLikeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleLike")
	defer scope.End()
	defer scope.TraceIfError(err)

	study, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study")

		return res, fmt.Errorf("failed to get study: %w", err)
	}

	if study.ID == constant.Empty {
		return res, failure.NotFound("study not found")
	}

	likes := []string(study.Likes)
	if index := slices.Index(likes, userID); index >= 0 {
		likes = slices.Delete(likes, index, index+1)
	} else {
		likes = append(likes, userID)
	}

	updatedFields := map[string]any{
		model.FieldLikes:         pq.StringArray(likes),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update study likes")

		return res, fmt.Errorf("failed to update study likes: %w", err)
	}

	s.invalidateListCaches(ctx)

	return dto.NewToggleLikeResponse(likes, userID), nil
}

// Share bumps the share counter. Counting is advisory, so the read-modify-write
// race with concurrent shares is accepted.
func (s *serviceImpl) Share(ctx context.Context, id string) (shares int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Share")
	defer scope.End()
	defer scope.TraceIfError(err)

	study, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get study")

		return shares, fmt.Errorf("failed to get study: %w", err)
	}

	if study.ID == constant.Empty {
		return shares, failure.NotFound("study not found")
	}

	shares = study.Shares + 1

	updatedFields := map[string]any{
		model.FieldShares:        shares,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update study shares")

		return shares, fmt.Errorf("failed to update study shares: %w", err)
	}

	s.invalidateListCaches(ctx)

	return shares, nil
}

func (s *serviceImpl) UploadAttachment(ctx context.Context, id string, req dto.UploadAttachmentRequest) (res dto.AttachmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAttachment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.authorizeMutation(ctx, id); err != nil {
		return res, err
	}

	filename := uuid.NewString()

	parts := strings.Split(req.Attachment.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.AttachmentFile, req.Attachment, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload study attachment")

		return res, fmt.Errorf("failed to upload study attachment: %w", err)
	}

	attachment := model.Attachment{
		ID:        uuid.NewString(),
		StudyID:   id,
		FileName:  req.Attachment.Filename,
		URL:       url,
		CreatedAt: timezone.Now(),
	}

	if err = s.repo.InsertAttachment(ctx, attachment); err != nil {
		log.Error().Err(err).Msg("failed to save study attachment")

		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return res, fmt.Errorf("failed to save study attachment: %w", err)
	}

	res.FromModel(attachment)

	return res, nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStudy)
		shared.InvalidateCaches(c, s.cache, cacheCountStudy)
	}()
}
