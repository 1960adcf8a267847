package api

import (
	"errors"
	"net/http"

	"rincon-reservas/internal/domain/reservation"
	reqdto "rincon-reservas/internal/handler/dto/request"
	resdto "rincon-reservas/internal/handler/dto/response"
	"rincon-reservas/internal/handler/httperr"
	"rincon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	MsgUnknownCategory = "Categoría no válida"
	MsgInvalidQuote    = "Solicitud de cotización inválida"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Current BCV exchange rate
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.ExchangeRateResponse
// @Router /api/exchange-rate [get]
func (h *PricingHandler) ExchangeRate(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromRateView(h.q.CurrentRate(c.Request.Context())))
}

// @Summary Exclusive areas of a category
// @Tags pricing
// @Produce json
// @Param category query string true "general or small_groups"
// @Success 200 {object} resdto.AreasResponse
// @Failure 400 {object} httperr.Response
// @Router /api/areas [get]
func (h *PricingHandler) Areas(c *gin.Context) {
	category := c.Query("category")
	views, err := h.q.Areas(category)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAreaViews(category, views))
}

// @Summary Quote a reservation
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidQuote, nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *PricingHandler) abortQueryErr(c *gin.Context, err error) {
	if errors.Is(err, reservation.ErrUnknownCategory) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgUnknownCategory, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error interno del servidor", nil)
}
