package handlers

import (
	"net/http"

	"sistemaos/internal/adapter/http/dto/response"
	"sistemaos/internal/usecase"
	"sistemaos/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves aggregate figures for the management dashboard.

type DashboardHandler struct {
	usecase usecase.IReportUseCase
}

func NewDashboardHandler(uc usecase.IReportUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.DashboardStats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func (h *DashboardHandler) StatusCount(c *gin.Context) {
	counts, err := h.usecase.StatusCount(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusCounts(counts))
}
