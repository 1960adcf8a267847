package bootstrap

import (
	"rincon-reservas/internal/infra/mail"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
		fx.Annotate(
			mail.NewRenderer,
			fx.As(new(commands.EmailRenderer)),
		),
	),
)

func NewMailer(cfg config.Config) *mail.SMTPMailer {
	return mail.NewSMTPMailer(cfg.Mail)
}
