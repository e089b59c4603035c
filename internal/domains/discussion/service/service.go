package service

import (
	"context"
	"fmt"
	"slices"

	"dronline/config"
	"dronline/infras/otel"
	"dronline/internal/domains/discussion/model"
	"dronline/internal/domains/discussion/model/dto"
	"dronline/internal/domains/discussion/repository"
	"dronline/shared"
	"dronline/shared/cache"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/failure"
	"dronline/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllDiscussion = "discussion:gets"
	cacheCountDiscussion  = "discussion:count"
)

type Discussion interface {
	Create(ctx context.Context, req dto.CreateDiscussionRequest, authorID string) (dto.DiscussionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDiscussionsResponse, error)
	Get(ctx context.Context, id string) (dto.DiscussionDetailResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateDiscussionRequest) (dto.DiscussionResponse, error)
	Delete(ctx context.Context, id string) error
	AddReply(ctx context.Context, id string, req dto.AddReplyRequest, senderID string) (dto.ReplyResponse, error)
	ToggleLike(ctx context.Context, id, userID string) (dto.ToggleLikeResponse, error)
}

type serviceImpl struct {
	repo  repository.Discussion
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Discussion, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Discussion {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDiscussionRequest, authorID string) (res dto.DiscussionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	discussion := req.ToModel(authorID)

	if err = s.repo.Insert(ctx, discussion); err != nil {
		log.Error().Err(err).Msg("failed to create discussion")

		return res, fmt.Errorf("failed to create discussion: %w", err)
	}

	res.FromModel(discussion)

	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDiscussionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDiscussion, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for discussions")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussions")

		return res, fmt.Errorf("failed to get discussions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save discussions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDiscussion, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count discussions")

		return res, fmt.Errorf("failed to count discussions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save discussion count to cache")
		}
	}()

	return res, nil
}

// Get returns the discussion with its replies and bumps the view counter.
// The bump is best effort and not atomic against concurrent readers.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DiscussionDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	discussion, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussion")

		return res, fmt.Errorf("failed to get discussion: %w", err)
	}

	if discussion.ID == constant.Empty {
		return res, failure.NotFound("discussion not found")
	}

	discussion.Views++

	go func() {
		c := context.WithoutCancel(ctx)

		fields := map[string]any{model.FieldViews: discussion.Views}
		if err := s.repo.Update(c, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("discussion_id", id).Msg("failed to increment discussion views")
		}
	}()

	replyParams := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	replies, err := s.repo.GetReplies(ctx, replyParams, shared.FilterByID(id, model.ReplyFieldDiscussionID, model.ReplyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussion replies")

		return res, fmt.Errorf("failed to get discussion replies: %w", err)
	}

	res.FromModels(discussion, replies)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateDiscussionRequest) (res dto.DiscussionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	discussion, err := s.authorizeMutation(ctx, id)
	if err != nil {
		return res, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, actor)

	if len(req.Tags) > 0 {
		updatedFields[model.FieldTags] = pq.StringArray(req.Tags)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update discussion")

		return res, fmt.Errorf("failed to update discussion: %w", err)
	}

	discussion, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussion")

		return res, fmt.Errorf("failed to get discussion: %w", err)
	}

	res.FromModel(discussion)

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

	if err = s.repo.DeleteReplies(ctx, shared.FilterByID(id, model.ReplyFieldDiscussionID, model.ReplyTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete discussion replies")

		return fmt.Errorf("failed to delete discussion replies: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete discussion")

		return fmt.Errorf("failed to delete discussion: %w", err)
	}

	s.invalidateListCaches(ctx)

	return nil
}

// authorizeMutation loads the discussion and rejects callers who are neither
// the author nor an admin.
func (s *serviceImpl) authorizeMutation(ctx context.Context, id string) (model.Discussion, error) {
	discussion, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussion")

		return discussion, fmt.Errorf("failed to get discussion: %w", err)
	}

	if discussion.ID == constant.Empty {
		return discussion, failure.NotFound("discussion not found")
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if actor != discussion.AuthorID && role != constant.RoleAdmin {
		return discussion, failure.Forbidden("only the author or an admin can modify this discussion")
	}

	return discussion, nil
}

func (s *serviceImpl) AddReply(ctx context.Context, id string, req dto.AddReplyRequest, senderID string) (res dto.ReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddReply")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check discussion existence")

		return res, fmt.Errorf("failed to check discussion existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("discussion not found")
	}

	reply := req.ToModel(id, senderID)

	if err = s.repo.InsertReply(ctx, reply); err != nil {
		log.Error().Err(err).Msg("failed to add discussion reply")

		return res, fmt.Errorf("failed to add discussion reply: %w", err)
	}

	res.FromModel(reply)

	return res, nil
}

// ToggleLike adds the caller to the like set, or removes them when present.
func (s *serviceImpl) ToggleLike(ctx context.Context, id, userID string) (res dto.ToggleLikeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleLike")
	defer scope.End()
	defer scope.TraceIfError(err)

	discussion, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get discussion")

		return res, fmt.Errorf("failed to get discussion: %w", err)
	}

	if discussion.ID == constant.Empty {
		return res, failure.NotFound("discussion not found")
	}

	likes := []string(discussion.Likes)
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
		log.Error().Err(err).Msg("failed to update discussion likes")

		return res, fmt.Errorf("failed to update discussion likes: %w", err)
	}

	s.invalidateListCaches(ctx)

	return dto.NewToggleLikeResponse(likes, userID), nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDiscussion)
		shared.InvalidateCaches(c, s.cache, cacheCountDiscussion)
	}()
}
