package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/pedidos/internal/pdf"
	"github.com/nurpe/pedidos/internal/service"
)

type Handler struct {
	auth           *service.AuthService
	pedidos        *service.PedidoService
	contracts      *service.ContractService
	reports        *service.ReportService
	maxUploadBytes int64
	log            zerolog.Logger
}

type Services struct {
	Auth      *service.AuthService
	Pedidos   *service.PedidoService
	Contracts *service.ContractService
	Reports   *service.ReportService
}

func NewHandler(services Services, maxUploadBytes int64, log zerolog.Logger) *Handler {
	return &Handler{
		auth:           services.Auth,
		pedidos:        services.Pedidos,
		contracts:      services.Contracts,
		reports:        services.Reports,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/status", h.status)

	api := router.Group("/api")
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	protected := api.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/contracts/upload", h.uploadContract)
	protected.POST("/contracts/export", h.exportContract)

	protected.POST("/pedidos", h.createPedido)
	protected.GET("/pedidos", h.listPedidos)
	protected.GET("/pedidos/:id", h.getPedido)
	protected.PUT("/pedidos/:id", h.updatePedido)
	protected.DELETE("/pedidos/:id", h.deletePedido)

	protected.GET("/reports", h.dashboard)
	protected.POST("/reports/export-selected-pedidos", h.exportSelectedPedidos)
	protected.GET("/reports/generate-delivery-report/:id", h.deliveryReport)
}

func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, pdf.ErrExtractionFailure):
		h.log.Warn().Err(err).Msg("contract extraction failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "não foi possível extrair texto do contrato"})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func sendFile(c *gin.Context, result *service.FileResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidInput
	}
	return id, nil
}
