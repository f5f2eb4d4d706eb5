package bootstrap

import "context"

// AuditLog is one entry of the audit trail.
type AuditLog struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

const (
	AuditServerShutdown          = "SERVER_SHUTDOWN"
	AuditDocumentRequestStatus   = "DOCUMENT_REQUEST_STATUS_CHANGED"
	AuditDocumentRequestAssigned = "DOCUMENT_REQUEST_ASSIGNED"
	AuditMeetingScheduled        = "MEETING_SCHEDULED"
	AuditMeetingStatus           = "MEETING_STATUS_CHANGED"
	AuditMeetingDeleted          = "MEETING_DELETED"
)
