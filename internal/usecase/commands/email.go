package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
)

type EmailType string

const (
	EmailTypePaymentConfirmation  EmailType = "mobile-payment-confirmation"
	EmailTypeBusinessNotification EmailType = "business-notification"
)

var (
	ErrEmailParamsMissing = errs.New("email type or data missing")
	ErrUnknownEmailType   = errs.New("unknown email type")
)

type SendEmailInput struct {
	Type string
	Data map[string]any
}

type EmailCommands interface {
	Send(ctx context.Context, in SendEmailInput) error
}

type emailCommandsImpl struct {
	mailer        Mailer
	renderer      EmailRenderer
	businessEmail string
	mailTimeout   time.Duration
}

func NewEmailCommands(mailer Mailer, renderer EmailRenderer, cfg config.Config) EmailCommands {
	return &emailCommandsImpl{
		mailer:        mailer,
		renderer:      renderer,
		businessEmail: cfg.Mail.BusinessEmail,
		mailTimeout:   mailTimeout(cfg.Mail),
	}
}

// Send returns errs.ErrMailTransportUnavailable or errs.ErrMailSendFailed marks
// for transport problems so callers can map them without string matching.
func (c *emailCommandsImpl) Send(ctx context.Context, in SendEmailInput) error {
	if strings.TrimSpace(in.Type) == "" || in.Data == nil {
		return ErrEmailParamsMissing
	}

	data := confirmationData(in.Data)
	var (
		tmpl    EmailTemplate
		to      string
		subject string
	)
	switch EmailType(in.Type) {
	case EmailTypePaymentConfirmation:
		tmpl = TemplatePaymentConfirmation
		to = data.CustomerEmail
		subject = "🏞️ Confirmación de Pago Móvil - " + data.SolicitudID
	case EmailTypeBusinessNotification:
		tmpl = TemplateBusinessNotification
		to = c.businessEmail
		subject = "📱 Pago Móvil Confirmado - " + data.SolicitudID
	default:
		return errs.Wrapf(ErrUnknownEmailType, "type %q", in.Type)
	}

	mailCtx, cancel := context.WithTimeout(ctx, c.mailTimeout)
	defer cancel()

	if err := c.mailer.Verify(mailCtx); err != nil {
		return errs.Mark(errs.Wrap(err, "verify mail transport"), errs.ErrMailTransportUnavailable)
	}

	html, err := c.renderer.Render(tmpl, data)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "render email"), errs.ErrMailSendFailed)
	}

	if strings.TrimSpace(to) == "" {
		return errs.Mark(errs.New("no recipient for email"), errs.ErrMailSendFailed)
	}

	err = c.mailer.Send(mailCtx, EmailMessage{To: []string{to}, Subject: subject, HTML: html})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "send email"), errs.ErrMailSendFailed)
	}
	return nil
}

func confirmationData(m map[string]any) ConfirmationEmailData {
	return ConfirmationEmailData{
		SolicitudID:   stringField(m, "solicitudId"),
		CustomerName:  stringField(m, "customerName"),
		CustomerEmail: stringField(m, "customerEmail"),
		VisitDate:     stringField(m, "visitDate"),
		TotalAmount:   stringField(m, "totalAmount"),
		Reference:     stringField(m, "reference"),
	}
}

func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return pricing.FormatAmount(t)
	default:
		return fmt.Sprint(v)
	}
}
