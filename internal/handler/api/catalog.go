package api

import (
	"errors"
	"net/http"

	resdto "rental-pricing/internal/handler/dto/response"
	"rental-pricing/internal/handler/httperr"
	"rental-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List catalog items
// @Description Active options of one booking form group with their daily rates
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group" Enums(equipment, studios, staff)
// @Success 200 {array} resdto.CatalogItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/{group} [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Param("group"))
	if err != nil {
		if errors.Is(err, queries.ErrUnknownGroup) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown group", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load catalog", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogItems(items))
}
