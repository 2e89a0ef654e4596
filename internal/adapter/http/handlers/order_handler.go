package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sistemaos/internal/adapter/http/dto/request"
	"sistemaos/internal/adapter/http/dto/response"
	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase"
	"sistemaos/internal/usecase/interfaces"
	"sistemaos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for service orders. The renderer is
// used only by the on-demand PDF endpoint; completion rendering happens
// inside the use case.

type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	renderer interfaces.IDocumentRenderer
}

func NewOrderHandler(uc usecase.IOrderUseCase, renderer interfaces.IDocumentRenderer) *OrderHandler {
	return &OrderHandler{usecase: uc, renderer: renderer}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, size := pageParams(c)
	orders, err := h.usecase.ListAll(c.Request.Context(), page, size)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPage(orders))
}

func (h *OrderHandler) ListByAssignee(c *gin.Context) {
	page, size := pageParams(c)
	orders, err := h.usecase.ListByAssignee(c.Request.Context(), c.Param("assigneeId"), page, size)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPage(orders))
}

func (h *OrderHandler) Update(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromOrder(result.Order)
	if result.RenderError != nil {
		resp.RenderWarning = "document rendering failed: " + result.RenderError.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// Report generates the period report. Query params: start and end, RFC 3339.
func (h *OrderHandler) Report(c *gin.Context) {
	start, err1 := time.Parse(time.RFC3339, c.Query("start"))
	end, err2 := time.Parse(time.RFC3339, c.Query("end"))
	if err1 != nil || err2 != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PERIOD", "start and end must be RFC 3339 timestamps", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.GenerateReport(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(report))
}

// RenderPDF returns the printable document for an order on demand.
func (h *OrderHandler) RenderPDF(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, err := h.renderer.RenderOrder(c.Request.Context(), order)
	if err != nil {
		appErr := pkg.NewDomainError("RENDER_FAILURE", "Failed to render order document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="service-order.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidAssigneeID),
		errors.Is(err, usecase.ErrMissingProblemDescription),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssigneeNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNEE_NOT_FOUND", "Assignee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
