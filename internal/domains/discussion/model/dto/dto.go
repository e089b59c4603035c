package dto

import (
	"slices"

	"dronline/internal/domains/discussion/model"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/google/uuid"
)

type CreateDiscussionRequest struct {
	Title       string   `json:"title"       validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"    validate:"omitempty,oneof=general research questions experiences"`
	Tags        []string `json:"tags"        validate:"omitempty,dive,max=50"`
}

func (r *CreateDiscussionRequest) ToModel(authorID string) model.Discussion {
	category := r.Category
	if category == "" {
		category = model.CategoryGeneral
	}

	return model.Discussion{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Description: r.Description,
		Category:    category,
		AuthorID:    authorID,
		Tags:        r.Tags,
		Likes:       []string{},
		Status:      model.StatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type UpdateDiscussionRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty,max=200"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Category    string   `db:"category"    json:"category"    validate:"omitempty,oneof=general research questions experiences"`
	Tags        []string `json:"tags"      validate:"omitempty,dive,max=50"`
	Status      string   `db:"status"      json:"status"      validate:"omitempty,oneof=open closed resolved"`
}

type AddReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (r *AddReplyRequest) ToModel(discussionID, senderID string) model.Reply {
	return model.Reply{
		ID:           uuid.NewString(),
		DiscussionID: discussionID,
		SenderID:     senderID,
		Content:      r.Content,
		CreatedAt:    timezone.Now(),
	}
}

type DiscussionResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	AuthorID    string   `json:"author_id"`
	AuthorName  *string  `json:"author_name,omitempty"`
	Tags        []string `json:"tags"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	LikedBy     []string `json:"liked_by"`
	Status      string   `json:"status"`
	gDto.Metadata
}

func (r *DiscussionResponse) FromModel(mod model.Discussion) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Category = mod.Category
	r.AuthorID = mod.AuthorID
	r.AuthorName = mod.AuthorName
	r.Tags = mod.Tags
	r.Views = mod.Views
	r.Likes = len(mod.Likes)
	r.LikedBy = mod.Likes
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type ReplyResponse struct {
	ID           string  `json:"id"`
	DiscussionID string  `json:"discussion_id"`
	SenderID     string  `json:"sender_id"`
	SenderName   *string `json:"sender_name,omitempty"`
	Content      string  `json:"content"`
	CreatedAt    string  `json:"created_at"`
}

func (r *ReplyResponse) FromModel(mod model.Reply) {
	r.ID = mod.ID
	r.DiscussionID = mod.DiscussionID
	r.SenderID = mod.SenderID
	r.SenderName = mod.SenderName
	r.Content = mod.Content
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type DiscussionDetailResponse struct {
	DiscussionResponse
	Replies []ReplyResponse `json:"replies"`
}

func (r *DiscussionDetailResponse) FromModels(mod model.Discussion, replies []model.Reply) {
	r.DiscussionResponse.FromModel(mod)

	r.Replies = make([]ReplyResponse, len(replies))
	for i, reply := range replies {
		r.Replies[i].FromModel(reply)
	}
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

func NewToggleLikeResponse(likes []string, userID string) ToggleLikeResponse {
	return ToggleLikeResponse{
		Liked: slices.Contains(likes, userID),
		Likes: len(likes),
	}
}

type GetDiscussionsResponse struct {
	Discussions []DiscussionResponse `json:"discussions"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetDiscussionsResponse) FromModels(models []model.Discussion, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Discussions = make([]DiscussionResponse, len(models))
	for i, mod := range models {
		r.Discussions[i].FromModel(mod)
	}
}
