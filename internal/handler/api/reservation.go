package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "rincon-reservas/internal/handler/dto/request"
	resdto "rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/handler/middleware"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MsgMissingDetails    = "Faltan los detalles de la reserva"
	MsgMissingReference  = "Falta el número de referencia"
	MsgMissingScreenshot = "Falta el comprobante de pago"

	MsgIntakeInternal = "Error interno del servidor al procesar el pago móvil"
	MsgIntakePayload  = "Error al procesar los datos enviados"
	MsgIntakeEmail    = "Error al enviar confirmación por email, pero el pago fue registrado"
)

type ReservationHandler struct {
	cmds commands.IntakeCommands
	app  config.AppConfig
}

func NewReservationHandler(cmds commands.IntakeCommands, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, app: cfg.App}
}

// @Summary Process Pago Móvil reservation
// @Description Registers a reservation paid by Pago Móvil and notifies customer and business by email
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessReservationRequest true "Reservation submission"
// @Success 200 {object} resdto.ProcessReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/process-reservation [post]
func (h *ReservationHandler) ProcessReservation(c *gin.Context) {
	var req reqdto.ProcessReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, middleware.MsgPayloadTooLarge, nil)
			return
		}
		h.abortInternal(c, errs.Mark(errs.Wrap(err, "decode request JSON"), errs.ErrInvalidPayload))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.abortInternal(c, err)
		return
	}

	result, err := h.cmds.ProcessReservation(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingDetails):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgMissingDetails, nil)
		case errors.Is(err, commands.ErrMissingReference):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgMissingReference, nil)
		case errors.Is(err, commands.ErrMissingScreenshot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgMissingScreenshot, nil)
		default:
			h.abortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntakeResult(result))
}

// detail text is echoed only in development
func (h *ReservationHandler) abortInternal(c *gin.Context, err error) {
	var details any
	if h.app.IsDevelopment() {
		details = err.Error()
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, intakeFailureMessage(err), details)
}

func intakeFailureMessage(err error) string {
	msg := err.Error()
	switch {
	case errs.Is(err, errs.ErrInvalidPayload) || strings.Contains(msg, "JSON"):
		return MsgIntakePayload
	case errs.IsAny(err, errs.ErrMailSendFailed, errs.ErrMailTransportUnavailable),
		strings.Contains(msg, "SMTP"), strings.Contains(msg, "email"):
		return MsgIntakeEmail
	default:
		return MsgIntakeInternal
	}
}
