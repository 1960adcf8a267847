package commands

import (
	"context"

	"rincon-reservas/internal/domain/reservation"
)

type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailMessage struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []EmailAttachment
}

// Mailer delivers HTML email. Verify reports whether the transport is usable.
type Mailer interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg EmailMessage) error
}

type EmailTemplate string

const (
	TemplateIntakeCustomer       EmailTemplate = "intake_customer"
	TemplateIntakeBusiness       EmailTemplate = "intake_business"
	TemplatePaymentConfirmation  EmailTemplate = "payment_confirmation"
	TemplateBusinessNotification EmailTemplate = "business_notification"
)

type EmailRenderer interface {
	Render(tmpl EmailTemplate, data any) (string, error)
}

// RecordStore is write-only; records are never read back by this service.
type RecordStore interface {
	Save(ctx context.Context, rec *reservation.Record) error
}

type IntakeEmailData struct {
	SolicitudID  string
	CustomerName string
	VisitDate    string
	Reference    string
	ReceivedAt   string
	BCVRate      string
	Details      reservation.Details
	HasReceipt   bool
}

type ConfirmationEmailData struct {
	SolicitudID   string
	CustomerName  string
	CustomerEmail string
	VisitDate     string
	TotalAmount   string
	Reference     string
}
