package model

import "dronline/shared/model"

const (
	TableName  = "notification_outbox"
	EntityName = "notification"

	FieldID        = "id"
	FieldRecipient = "recipient"
	FieldSubject   = "subject"
	FieldBody      = "body"
	FieldStatus    = "status"
	FieldAttempts  = "attempts"
	FieldLastError = "last_error"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Notification is an outbox row. Rows are written inside the business
// transaction that triggers them and delivered asynchronously by the relay,
// so a notification is delivered at least once after its transaction commits.
type Notification struct {
	ID        string  `db:"id"`
	Recipient string  `db:"recipient"`
	Subject   string  `db:"subject"`
	Body      string  `db:"body"`
	Status    string  `db:"status"`
	Attempts  int     `db:"attempts"`
	LastError *string `db:"last_error"`
	model.Metadata
}
