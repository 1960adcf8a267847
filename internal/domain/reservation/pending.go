package reservation

import (
	"fmt"
	"net/url"
)

const PendingBanner = "PENDING"

type ContactInfo struct {
	WhatsAppNumber string
	Email          string
	Phone          string
}

type PendingView struct {
	SolicitudID   string
	Banner        string
	CustomerEmail string
	CustomerPhone string
	NextSteps     []string
	WhatsAppURL   string
	MailtoURL     string
	Contact       ContactInfo
}

func NewPendingView(solicitudID, customerEmail, customerPhone string, contact ContactInfo) PendingView {
	return PendingView{
		SolicitudID:   solicitudID,
		Banner:        PendingBanner,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone,
		NextSteps: []string{
			"Nuestro equipo verificará tu pago móvil en las próximas horas.",
			"Recibirás un correo de confirmación cuando el pago sea validado.",
			"Presenta tu ID de solicitud el día de tu visita.",
		},
		WhatsAppURL: WhatsAppLink(contact.WhatsAppNumber, solicitudID),
		MailtoURL:   mailtoLink(contact.Email, solicitudID),
		Contact:     contact,
	}
}

func WhatsAppLink(number, solicitudID string) string {
	msg := fmt.Sprintf("Hola! Acabo de hacer una reserva con ID: %s. ¿Podrían confirmar el estado de mi pago?", solicitudID)
	return "https://wa.me/" + number + "?" + url.Values{"text": {msg}}.Encode()
}

func mailtoLink(email, solicitudID string) string {
	if email == "" {
		return ""
	}
	q := url.Values{"subject": {"Consulta sobre reserva " + solicitudID}}
	return "mailto:" + email + "?" + q.Encode()
}
