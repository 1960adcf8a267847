package mail

import (
	"bytes"
	"embed"
	"html/template"

	"rincon-reservas/internal/domain/pricing"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(cfg config.BusinessConfig) (*Renderer, error) {
	funcs := template.FuncMap{
		"money":        pricing.FormatAmount,
		"contactPhone": func() string { return cfg.ContactPhone },
		"contactEmail": func() string { return cfg.ContactEmail },
	}
	tmpl, err := template.New("mail").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "parse email templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(name commands.EmailTemplate, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, string(name), data); err != nil {
		return "", errs.Wrapf(err, "render email template %s", name)
	}
	return buf.String(), nil
}
