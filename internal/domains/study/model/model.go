package model

import (
	"dronline/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "studies"
	EntityName = "study"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldCondition       = "condition"
	FieldAuthorID        = "author_id"
	FieldSource          = "source"
	FieldPublicationDate = "publication_date"
	FieldContent         = "content"
	FieldTags            = "tags"
	FieldLikes           = "likes"
	FieldShares          = "shares"
)

const (
	AttachmentTableName  = "study_attachments"
	AttachmentEntityName = "study_attachment"

	AttachmentFieldID      = "id"
	AttachmentFieldStudyID = "study_id"
)

type Study struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	Condition       string         `db:"condition"`
	AuthorID        string         `db:"author_id"`
	Source          *string        `db:"source"`
	PublicationDate *time.Time     `db:"publication_date"`
	Content         string         `db:"content"`
	Tags            pq.StringArray `db:"tags"`
	Likes           pq.StringArray `db:"likes"`
	Shares          int            `db:"shares"`

	AuthorName *string `db:"author_name" table:"authors" column:"full_name"`
	model.Metadata
}

func (Study) GetJoinQuery() string {
	return "LEFT JOIN users authors ON studies.author_id = authors.id"
}

type Attachment struct {
	ID        string    `db:"id"`
	StudyID   string    `db:"study_id"`
	FileName  string    `db:"file_name"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}
