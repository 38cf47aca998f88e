package api

import (
	"net/http"

	resdto "rental-pricing/internal/handler/dto/response"
	"rental-pricing/internal/handler/httperr"
	"rental-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	q queries.FormQueries
}

func NewFormHandler(q queries.FormQueries) *FormHandler {
	return &FormHandler{q: q}
}

// @Summary Current date and time for the form
// @Description Values for the "Today" and "Now" shortcuts in the form timezone
// @Tags form
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FormNowResponse
// @Failure 401 {object} httperr.Response
// @Router /api/form/now [get]
func (h *FormHandler) Now(c *gin.Context) {
	res, err := resdto.FromFormNowView(h.q.Now(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read clock", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
