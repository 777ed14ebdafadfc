package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/pedidos/internal/http/middleware"
	"github.com/nurpe/pedidos/internal/model"
	"github.com/nurpe/pedidos/internal/service"
)

// flexInt accepts a JSON number or a numeric string, as sent by HTML forms.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("quantidade inválida %q", s)
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type pedidoRequest struct {
	ClienteNome              *string  `json:"clienteNome"`
	DataEvento               *string  `json:"dataEvento"`
	DataRetirada             *string  `json:"dataRetirada"`
	HorarioRetirada          *string  `json:"horarioRetirada"`
	TipoPedido               *string  `json:"tipoPedido"`
	Quantidade               *flexInt `json:"quantidade"`
	Sabores                  *string  `json:"sabores"`
	TipoEmbalagem            *string  `json:"tipoEmbalagem"`
	Observacoes              *string  `json:"observacoes"`
	Status                   *string  `json:"status"`
	ClienteRG                *string  `json:"clienteRG"`
	ClienteCPF               *string  `json:"clienteCPF"`
	NomeContratado           *string  `json:"nomeContratado"`
	CNPJContratado           *string  `json:"cnpjContratado"`
	ValorTotalPedidoContrato *string  `json:"valorTotalPedidoContrato"`
	DataPagamentoContrato    *string  `json:"dataPagamentoContrato"`
	LocalEvento              *string  `json:"localEvento"`
	ProdutosContratadosJSON  *string  `json:"produtosContratadosJson"`
}

func (r pedidoRequest) createInput(principal model.Principal) service.CreatePedidoInput {
	return service.CreatePedidoInput{
		ClienteNome:              deref(r.ClienteNome),
		DataEvento:               deref(r.DataEvento),
		DataRetirada:             deref(r.DataRetirada),
		HorarioRetirada:          deref(r.HorarioRetirada),
		TipoPedido:               deref(r.TipoPedido),
		Quantidade:               quantity(r.Quantidade),
		Sabores:                  deref(r.Sabores),
		TipoEmbalagem:            deref(r.TipoEmbalagem),
		Observacoes:              deref(r.Observacoes),
		ClienteRG:                deref(r.ClienteRG),
		ClienteCPF:               deref(r.ClienteCPF),
		NomeContratado:           deref(r.NomeContratado),
		CNPJContratado:           deref(r.CNPJContratado),
		ValorTotalPedidoContrato: deref(r.ValorTotalPedidoContrato),
		DataPagamentoContrato:    deref(r.DataPagamentoContrato),
		LocalEvento:              deref(r.LocalEvento),
		ProdutosContratadosJSON:  deref(r.ProdutosContratadosJSON),
		Principal:                principal,
	}
}

func (r pedidoRequest) updateInput() service.UpdatePedidoInput {
	var qty *int
	if r.Quantidade != nil {
		n := int(*r.Quantidade)
		qty = &n
	}
	return service.UpdatePedidoInput{
		ClienteNome:              r.ClienteNome,
		DataEvento:               r.DataEvento,
		DataRetirada:             r.DataRetirada,
		HorarioRetirada:          r.HorarioRetirada,
		TipoPedido:               r.TipoPedido,
		Quantidade:               qty,
		Sabores:                  r.Sabores,
		TipoEmbalagem:            r.TipoEmbalagem,
		Observacoes:              r.Observacoes,
		Status:                   r.Status,
		ClienteRG:                r.ClienteRG,
		ClienteCPF:               r.ClienteCPF,
		NomeContratado:           r.NomeContratado,
		CNPJContratado:           r.CNPJContratado,
		ValorTotalPedidoContrato: r.ValorTotalPedidoContrato,
		DataPagamentoContrato:    r.DataPagamentoContrato,
		LocalEvento:              r.LocalEvento,
		ProdutosContratadosJSON:  r.ProdutosContratadosJSON,
	}
}

func (h *Handler) createPedido(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req pedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pedido, err := h.pedidos.Create(c.Request.Context(), req.createInput(principal))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pedido salvo com sucesso!",
		"pedido":  pedido,
	})
}

func (h *Handler) listPedidos(c *gin.Context) {
	filter := model.PedidoFilter{
		Cliente:    strings.TrimSpace(c.Query("cliente")),
		DataEvento: strings.TrimSpace(c.Query("dataEvento")),
	}
	for _, status := range strings.Split(c.Query("status"), ",") {
		if status = strings.TrimSpace(status); status != "" {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	pedidos, err := h.pedidos.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

func (h *Handler) getPedido(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	pedido, err := h.pedidos.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

func (h *Handler) updatePedido(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req pedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pedido, err := h.pedidos.Update(c.Request.Context(), id, req.updateInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pedido atualizado com sucesso!",
		"pedido":  pedido,
	})
}

func (h *Handler) deletePedido(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.pedidos.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido excluído com sucesso!"})
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func quantity(value *flexInt) int {
	if value == nil {
		return 0
	}
	return int(*value)
}
