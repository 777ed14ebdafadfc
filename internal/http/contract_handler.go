package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/pedidos/internal/service"
)

func (h *Handler) uploadContract(c *gin.Context) {
	result, ok := h.extractUploaded(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Dados extraídos com sucesso! Revise para salvar como pedido.",
		"extractedData":  result.Draft,
		"dadosExtraidos": result.Record,
	})
}

func (h *Handler) exportContract(c *gin.Context) {
	result, ok := h.extractUploaded(c)
	if !ok {
		return
	}

	content, err := h.contracts.ExportRecord(result.Record)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sendFile(c, &service.FileResult{
		FileName:    fmt.Sprintf("dados_contrato_%s.xlsx", time.Now().Format("20060102_150405")),
		ContentType: service.ContentTypeXLSX,
		Content:     content,
	})
}

// extractUploaded reads the multipart "file" field and runs the contract
// extraction on it. It writes the error response itself when it fails.
func (h *Handler) extractUploaded(c *gin.Context) (*service.ExtractResult, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("arquivo excede o limite de %d bytes", tooLarge.Limit),
			})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "nenhum arquivo enviado"})
		return nil, false
	}
	if err := service.ValidateFileName(header.Filename); err != nil {
		h.handleError(c, err)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.handleError(c, fmt.Errorf("open upload: %w", err))
		return nil, false
	}
	defer file.Close()

	result, err := h.contracts.ExtractUpload(c.Request.Context(), file, header.Filename)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return result, true
}
