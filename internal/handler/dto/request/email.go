package request

import "rincon-reservas/internal/usecase/commands"

type SendEmailRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func (r SendEmailRequest) ToInput() commands.SendEmailInput {
	return commands.SendEmailInput{Type: r.Type, Data: r.Data}
}
