package mail

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"
)

const defaultDialTimeout = 10 * time.Second

// SMTPMailer opens one connection per call, upgrading with STARTTLS when offered.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) configured() error {
	if m.cfg.Host == "" || m.cfg.Port <= 0 || m.cfg.Username == "" || m.cfg.Password == "" {
		return errs.ErrMailNotConfigured
	}
	return nil
}

// Verify connects and authenticates without sending anything.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.configured(); err != nil {
		return err
	}
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Quit(); err != nil {
		return errs.Wrap(err, "smtp quit")
	}
	return nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg commands.EmailMessage) error {
	if err := m.configured(); err != nil {
		return err
	}

	body, err := BuildMessage(m.cfg.FromName, m.cfg.Sender(), msg)
	if err != nil {
		return err
	}

	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(m.cfg.Sender()); err != nil {
		return errs.Wrap(err, "smtp MAIL FROM")
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return errs.Wrapf(err, "smtp RCPT TO %s", rcpt)
		}
	}

	w, err := client.Data()
	if err != nil {
		return errs.Wrap(err, "smtp DATA")
	}
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return errs.Wrap(err, "smtp write body")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "smtp end DATA")
	}

	if err := client.Quit(); err != nil {
		slog.Warn("smtp quit failed after send", "error", err.Error())
	}
	slog.Debug("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *SMTPMailer) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: defaultDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.cfg.Addr())
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to SMTP server")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to start SMTP session")
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName:         m.cfg.Host,
			InsecureSkipVerify: m.cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local relays
			MinVersion:         tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, errs.Wrap(err, "failed to start TLS")
		}
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "SMTP authentication failed")
	}
	return client, nil
}
