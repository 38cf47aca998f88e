package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "rental-pricing/internal/handler/dto/request"
	resdto "rental-pricing/internal/handler/dto/response"
	"rental-pricing/internal/handler/httperr"
	"rental-pricing/internal/pkg/config"
	"rental-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q   queries.QuoteQueries
	loc *time.Location
}

func NewQuoteHandler(q queries.QuoteQueries, cfg config.Config) *QuoteHandler {
	return &QuoteHandler{q: q, loc: cfg.Pricing.FormLocation()}
}

// @Summary Price a booking
// @Description Compute rental days, per-group subtotals and the total for the current booking form state
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Booking form snapshot"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking time", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCatalogItemNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown catalog item", err.Error())
		case queries.IsClientError(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute quote", nil)
		}
		return
	}

	res, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute quote", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
