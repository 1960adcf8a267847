package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/pkg/clock"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/dataurl"
	"rincon-reservas/internal/pkg/errs"
)

var (
	ErrMissingDetails    = errs.New("reservation details missing")
	ErrMissingReference  = errs.New("transaction reference missing")
	ErrMissingScreenshot = errs.New("payment screenshot missing")
)

const (
	receivedAtLayout = "02/01/2006, 15:04"
	storeTimeout     = 10 * time.Second

	SkipTransportUnavailable = "transport_unavailable"
	SkipMissingCustomerEmail = "missing_customer_email"
)

type IntakeInput struct {
	Details              *reservation.Details
	TransactionReference string
	ScreenshotDataURL    string
	PaymentMethod        string
}

func (in IntakeInput) validate() error {
	switch {
	case in.Details == nil:
		return ErrMissingDetails
	case strings.TrimSpace(in.TransactionReference) == "":
		return ErrMissingReference
	case strings.TrimSpace(in.ScreenshotDataURL) == "":
		return ErrMissingScreenshot
	}
	return nil
}

// NotificationResult is advisory: it never changes the intake outcome.
type NotificationResult struct {
	Skipped      bool
	SkipReason   string
	CustomerSent bool
	BusinessSent bool
	Err          error
}

type IntakeResult struct {
	Record       *reservation.Record
	CustomerName string
	TotalAmount  float64
	Notification NotificationResult
	Stored       bool
}

type IntakeCommands interface {
	ProcessReservation(ctx context.Context, in IntakeInput) (*IntakeResult, error)
}

type intakeCommandsImpl struct {
	mailer        Mailer
	renderer      EmailRenderer
	store         RecordStore
	clock         clock.Clock
	location      *time.Location
	businessEmail string
	mailTimeout   time.Duration
}

const defaultMailTimeout = 15 * time.Second

func mailTimeout(cfg config.MailConfig) time.Duration {
	if cfg.Timeout <= 0 {
		return defaultMailTimeout
	}
	return cfg.Timeout
}

func NewIntakeCommands(mailer Mailer, renderer EmailRenderer, store RecordStore, clk clock.Clock, cfg config.Config) IntakeCommands {
	return &intakeCommandsImpl{
		mailer:        mailer,
		renderer:      renderer,
		store:         store,
		clock:         clk,
		location:      clock.LoadLocation(cfg.Business.TimeZone, cfg.Log.TimeZoneOffset),
		businessEmail: cfg.Mail.BusinessEmail,
		mailTimeout:   mailTimeout(cfg.Mail),
	}
}

func (c *intakeCommandsImpl) ProcessReservation(ctx context.Context, in IntakeInput) (*IntakeResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	details := *in.Details
	rec := reservation.NewRecord(
		reservation.NewSolicitudID(now),
		details,
		strings.TrimSpace(in.TransactionReference),
		true,
		now,
	)

	if in.PaymentMethod != "" && in.PaymentMethod != reservation.PaymentMethodPagoMovil {
		slog.Warn("unexpected payment method, recording as pago movil",
			"solicitud_id", rec.SolicitudID(), "payment_method", in.PaymentMethod)
	}

	result := &IntakeResult{
		Record:       rec,
		CustomerName: details.CustomerName(),
		TotalAmount:  details.TotalVEF,
	}

	result.Notification = c.notify(ctx, rec, in.ScreenshotDataURL)
	logNotification(rec.SolicitudID(), result.Notification)

	if err := c.save(ctx, rec); err != nil {
		slog.Error("failed to store reservation record",
			"solicitud_id", rec.SolicitudID(), "error", err.Error())
	} else {
		result.Stored = true
	}

	return result, nil
}

// save outlives a client disconnect so a notified reservation is also recorded.
func (c *intakeCommandsImpl) save(ctx context.Context, rec *reservation.Record) error {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	return c.store.Save(storeCtx, rec)
}

// notify runs detached from the caller's cancellation and bounded by the mail timeout.
func (c *intakeCommandsImpl) notify(ctx context.Context, rec *reservation.Record, screenshot string) NotificationResult {
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.mailTimeout)
	defer cancel()

	if err := c.mailer.Verify(mailCtx); err != nil {
		return NotificationResult{Skipped: true, SkipReason: SkipTransportUnavailable, Err: err}
	}

	details := rec.Details()
	customerEmail := strings.TrimSpace(details.BookerEmail)
	if customerEmail == "" {
		return NotificationResult{Skipped: true, SkipReason: SkipMissingCustomerEmail}
	}

	attachment, hasReceipt := receiptAttachment(rec.SolicitudID(), screenshot)
	data := IntakeEmailData{
		SolicitudID:  rec.SolicitudID(),
		CustomerName: details.CustomerName(),
		VisitDate:    details.VisitDateOrDefault(),
		Reference:    rec.Reference(),
		ReceivedAt:   rec.SubmittedAt().In(c.location).Format(receivedAtLayout),
		BCVRate:      pricing.FormatRate(details.BCVRate),
		Details:      details,
		HasReceipt:   hasReceipt,
	}

	var res NotificationResult

	customerHTML, err := c.renderer.Render(TemplateIntakeCustomer, data)
	if err != nil {
		res.Err = errs.Wrap(err, "render customer email")
		return res
	}
	err = c.mailer.Send(mailCtx, EmailMessage{
		To:      []string{customerEmail},
		Subject: "🏞️ Pago Móvil Recibido - Reserva " + rec.SolicitudID(),
		HTML:    customerHTML,
	})
	if err != nil {
		res.Err = errs.Wrap(err, "send customer email")
		return res
	}
	res.CustomerSent = true

	businessHTML, err := c.renderer.Render(TemplateIntakeBusiness, data)
	if err != nil {
		res.Err = errs.Wrap(err, "render business email")
		return res
	}
	msg := EmailMessage{
		To:      []string{c.businessEmail},
		Subject: "📱 Nueva Reserva Pago Móvil - " + rec.SolicitudID() + " - " + data.CustomerName,
		HTML:    businessHTML,
	}
	if hasReceipt {
		msg.Attachments = []EmailAttachment{attachment}
	}
	if err := c.mailer.Send(mailCtx, msg); err != nil {
		res.Err = errs.Wrap(err, "send business email")
		return res
	}
	res.BusinessSent = true
	return res
}

func receiptAttachment(solicitudID, screenshot string) (EmailAttachment, bool) {
	_, data, err := dataurl.Decode(screenshot)
	if err != nil || len(data) == 0 {
		slog.Warn("payment screenshot could not be decoded, sending without attachment",
			"solicitud_id", solicitudID)
		return EmailAttachment{}, false
	}
	return EmailAttachment{
		Filename:    "comprobante-" + solicitudID + ".jpg",
		ContentType: "image/jpeg",
		Content:     data,
	}, true
}

func logNotification(solicitudID string, n NotificationResult) {
	attrs := []any{
		"solicitud_id", solicitudID,
		"notification_customer_sent", n.CustomerSent,
		"notification_business_sent", n.BusinessSent,
	}
	switch {
	case n.Skipped && n.Err != nil:
		slog.Warn("email transport unavailable, notifications skipped",
			append(attrs, "notification_skip_reason", n.SkipReason, "error", n.Err.Error())...)
	case n.Skipped:
		slog.Info("notifications skipped", append(attrs, "notification_skip_reason", n.SkipReason)...)
	case n.Err != nil:
		slog.Error("notification email failed, payment still registered",
			append(attrs, "error", n.Err.Error())...)
	default:
		slog.Info("notification emails sent", attrs...)
	}
}
