package notification

import (
	"context"
	"errors"
	"fmt"

	"barangay-portal/internal/events"
	"barangay-portal/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer hands a composed mail to a transport.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// LogMailer records mails in the log instead of sending them.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("notification.mailer")}
}

func (m *LogMailer) Send(ctx context.Context, mail Mail) error {
	m.logger.Info("mail sent",
		zap.String("to", mail.To),
		zap.String("subject", mail.Subject),
		zap.Int("body_bytes", len(mail.Body)),
	)
	return nil
}

var subjects = map[string]string{
	TypeDocumentRequestStatusChanged: "Your document request was updated",
	TypeDocumentRequestAssigned:      "A document request was assigned to you",
	TypeJobApplicationReceived:       "New application for your job listing",
	TypeJobApplicationAccepted:       "Your job application was accepted",
	TypeJobApplicationRejected:       "Update on your job application",
	TypeInterviewScheduled:           "Interview scheduled",
	TypeMeetingScheduled:             "Barangay meeting scheduled",
}

// ErrUnknownRecipient marks events whose recipient no longer exists; they are skipped.
var ErrUnknownRecipient = errors.New("notification recipient not found")

// MailDelivery turns queued notification events into mails.
type MailDelivery struct {
	users  user.Repository
	mailer Mailer
}

func NewMailDelivery(users user.Repository, mailer Mailer) *MailDelivery {
	return &MailDelivery{users: users, mailer: mailer}
}

func (d *MailDelivery) Deliver(ctx context.Context, event events.NotificationQueuedEvent) error {
	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownRecipient, event.RecipientID)
	}

	u, err := d.users.FindByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownRecipient, event.RecipientID)
		}
		return err
	}

	subject, ok := subjects[event.NotificationType]
	if !ok {
		subject = "Barangay portal notification"
	}

	return d.mailer.Send(ctx, Mail{
		To:      u.Email,
		Subject: subject,
		Body:    fmt.Sprintf("Hello %s,\n\n%s\n\n%s", u.Name, subject, string(event.Payload)),
	})
}
