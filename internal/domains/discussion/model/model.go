package model

import (
	"dronline/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "discussions"
	EntityName = "discussion"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAuthorID    = "author_id"
	FieldTags        = "tags"
	FieldViews       = "views"
	FieldLikes       = "likes"
	FieldStatus      = "status"
)

const (
	ReplyTableName  = "discussion_replies"
	ReplyEntityName = "discussion_reply"

	ReplyFieldID           = "id"
	ReplyFieldDiscussionID = "discussion_id"
)

const (
	CategoryGeneral     = "general"
	CategoryResearch    = "research"
	CategoryQuestions   = "questions"
	CategoryExperiences = "experiences"
)

const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusResolved = "resolved"
)

type Discussion struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	AuthorID    string         `db:"author_id"`
	Tags        pq.StringArray `db:"tags"`
	Views       int            `db:"views"`
	Likes       pq.StringArray `db:"likes"`
	Status      string         `db:"status"`

	AuthorName *string `db:"author_name" table:"authors" column:"full_name"`
	model.Metadata
}

func (Discussion) GetJoinQuery() string {
	return "LEFT JOIN users authors ON discussions.author_id = authors.id"
}

type Reply struct {
	ID           string    `db:"id"`
	DiscussionID string    `db:"discussion_id"`
	SenderID     string    `db:"sender_id"`
	Content      string    `db:"content"`
	CreatedAt    time.Time `db:"created_at"`

	SenderName *string `db:"sender_name" table:"senders" column:"full_name"`
}

func (Reply) GetJoinQuery() string {
	return "LEFT JOIN users senders ON discussion_replies.sender_id = senders.id"
}
