package dto

import (
	"mime/multipart"
	"slices"
	"time"

	"dronline/internal/domains/study/model"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/google/uuid"
)

type CreateStudyRequest struct {
	Title           string     `json:"title"            validate:"required,max=300"`
	Description     string     `json:"description"      validate:"required"`
	Condition       string     `json:"condition"        validate:"required,max=100"`
	Source          *string    `json:"source"           validate:"omitempty,max=300"`
	PublicationDate *time.Time `json:"publication_date" validate:"omitempty"`
	Content         string     `json:"content"          validate:"required"`
	Tags            []string   `json:"tags"             validate:"omitempty,dive,max=50"`
}

func (r *CreateStudyRequest) ToModel(authorID string) model.Study {
	return model.Study{
		ID:              uuid.NewString(),
		Title:           r.Title,
		Description:     r.Description,
		Condition:       r.Condition,
		AuthorID:        authorID,
		Source:          r.Source,
		PublicationDate: r.PublicationDate,
		Content:         r.Content,
		Tags:            r.Tags,
		Likes:           []string{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type UpdateStudyRequest struct {
	Title           string     `db:"title"            json:"title"            validate:"omitempty,max=300"`
	Description     string     `db:"description"      json:"description"      validate:"omitempty"`
	Condition       string     `db:"condition"        json:"condition"        validate:"omitempty,max=100"`
	Source          *string    `db:"source"           json:"source"           validate:"omitempty,max=300"`
	PublicationDate *time.Time `db:"publication_date" json:"publication_date" validate:"omitempty"`
	Content         string     `db:"content"          json:"content"          validate:"omitempty"`
	Tags            []string   `json:"tags"           validate:"omitempty,dive,max=50"`
}

type UploadAttachmentRequest struct {
	Attachment     *multipart.FileHeader `validate:"required,maxfilesize=10"`
	AttachmentFile multipart.File
}

type AttachmentResponse struct {
	ID        string `json:"id"`
	StudyID   string `json:"study_id"`
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

func (r *AttachmentResponse) FromModel(mod model.Attachment) {
	r.ID = mod.ID
	r.StudyID = mod.StudyID
	r.FileName = mod.FileName
	r.URL = mod.URL
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type StudyResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Condition       string   `json:"condition"`
	AuthorID        string   `json:"author_id"`
	AuthorName      *string  `json:"author_name,omitempty"`
	Source          *string  `json:"source,omitempty"`
	PublicationDate *string  `json:"publication_date,omitempty"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags"`
	Likes           int      `json:"likes"`
	LikedBy         []string `json:"liked_by"`
	Shares          int      `json:"shares"`
	gDto.Metadata
}

func (r *StudyResponse) FromModel(mod model.Study) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Condition = mod.Condition
	r.AuthorID = mod.AuthorID
	r.AuthorName = mod.AuthorName
	r.Source = mod.Source
	r.Content = mod.Content
	r.Tags = mod.Tags
	r.Likes = len(mod.Likes)
	r.LikedBy = mod.Likes
	r.Shares = mod.Shares
	r.Metadata.FromModel(mod.Metadata)

	if mod.PublicationDate != nil {
		formatted := timezone.Format(*mod.PublicationDate, constant.DateFormat)
		r.PublicationDate = &formatted
	}
}

type StudyDetailResponse struct {
	StudyResponse
	Attachments []AttachmentResponse `json:"attachments"`
}

func (r *StudyDetailResponse) FromModels(mod model.Study, attachments []model.Attachment) {
	r.StudyResponse.FromModel(mod)

	r.Attachments = make([]AttachmentResponse, len(attachments))
	for i, attachment := range attachments {
		r.Attachments[i].FromModel(attachment)
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

type GetStudiesResponse struct {
	Studies   []StudyResponse `json:"studies"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStudiesResponse) FromModels(models []model.Study, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Studies = make([]StudyResponse, len(models))
	for i, mod := range models {
		r.Studies[i].FromModel(mod)
	}
}
