package api

import (
	"errors"
	"net/http"

	reqdto "rincon-reservas/internal/handler/dto/request"
	resdto "rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/pkg/config"
	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MsgEmailParamsMissing = "Faltan parámetros requeridos"
	MsgEmailUnknownType   = "Tipo de email no válido"
	MsgEmailConfig        = "Error de configuración de email"
	MsgEmailFailed        = "Error al enviar el email"
	MsgEmailSent          = "Email enviado correctamente"
)

type EmailHandler struct {
	cmds commands.EmailCommands
	app  config.AppConfig
}

func NewEmailHandler(cmds commands.EmailCommands, cfg config.Config) *EmailHandler {
	return &EmailHandler{cmds: cmds, app: cfg.App}
}

// @Summary Send confirmation email
// @Description Sends a payment confirmation to the customer or a notification to the business
// @Tags email
// @Accept json
// @Produce json
// @Param request body reqdto.SendEmailRequest true "Email type and template data"
// @Success 200 {object} resdto.SendEmailResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/send-email [post]
func (h *EmailHandler) Send(c *gin.Context) {
	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortFailed(c, errs.Mark(errs.Wrap(err, "decode request JSON"), errs.ErrInvalidPayload))
		return
	}

	err := h.cmds.Send(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailParamsMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgEmailParamsMissing, nil)
		case errors.Is(err, commands.ErrUnknownEmailType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgEmailUnknownType, nil)
		case errs.Is(err, errs.ErrMailTransportUnavailable):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgEmailConfig, nil)
		default:
			h.abortFailed(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SendEmailResponse{Success: true, Message: MsgEmailSent})
}

func (h *EmailHandler) abortFailed(c *gin.Context, err error) {
	var details any
	if h.app.IsDevelopment() {
		details = err.Error()
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgEmailFailed, details)
}
