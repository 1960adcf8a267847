package response

import (
	"rincon-reservas/internal/domain/reservation"
	"rincon-reservas/internal/usecase/commands"
)

const MsgReservationProcessed = "Pago móvil procesado correctamente"

type ReservationData struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	TotalAmount  float64 `json:"totalAmount"`
	Reference    string  `json:"reference"`
}

type ProcessReservationResponse struct {
	Success     bool            `json:"success"`
	SolicitudID string          `json:"solicitudId"`
	Message     string          `json:"message"`
	Data        ReservationData `json:"data"`
}

func FromIntakeResult(r *commands.IntakeResult) *ProcessReservationResponse {
	id := r.Record.SolicitudID()
	return &ProcessReservationResponse{
		Success:     true,
		SolicitudID: id,
		Message:     MsgReservationProcessed,
		Data: ReservationData{
			ID:           id,
			Status:       reservation.StatusPendingVerification.String(),
			CustomerName: r.CustomerName,
			TotalAmount:  r.TotalAmount,
			Reference:    r.Record.Reference(),
		},
	}
}

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
