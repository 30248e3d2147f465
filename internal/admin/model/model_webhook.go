package model

import "time"

// Provider webhook event types. The provider emits two spellings for
// completion depending on the template generation.
const (
	WebhookEventViewed        = "form.viewed"
	WebhookEventStarted       = "form.started"
	WebhookEventCompleted     = "submission.completed"
	WebhookEventFormCompleted = "form.completed"
	WebhookEventDeclined      = "form.declined"
)

// WebhookEvent is the normalized shape of a signing-provider callback.
type WebhookEvent struct {
	EventType string      `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      WebhookData `json:"data"`
}

type WebhookData struct {
	SubmissionId string `json:"submission_id"`
	TemplateId   string `json:"template_id"`
	SignerEmail  string `json:"signer_email"`
	SignerName   string `json:"signer_name"`
	DocumentUrl  string `json:"document_url"`
	AuditLogUrl  string `json:"audit_log_url"`
	// Values carries the raw form fields, shape varies by template.
	Values map[string]any `json:"values"`
}

// WebhookArchive is the Mongo record archiving every received callback,
// whether or not it correlated to a tracking row.
type WebhookArchive struct {
	EventId    string         `bson:"eventId" json:"eventId"`
	EventType  string         `bson:"eventType" json:"eventType"`
	ReceivedAt time.Time      `bson:"receivedAt" json:"receivedAt"`
	Matched    bool           `bson:"matched" json:"matched"`
	RowId      string         `bson:"rowId,omitempty" json:"rowId,omitempty"`
	Payload    map[string]any `bson:"payload" json:"payload"`
}
