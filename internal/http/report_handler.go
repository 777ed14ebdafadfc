package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type exportSelectedRequest struct {
	PedidoIDs []int64 `json:"pedido_ids"`
}

func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) exportSelectedPedidos(c *gin.Context) {
	var req exportSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.ExportSelected(c.Request.Context(), req.PedidoIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}

func (h *Handler) deliveryReport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.reports.DeliveryReceipt(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}
