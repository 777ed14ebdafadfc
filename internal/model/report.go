package model

import "time"

type DashboardStats struct {
	TotalPedidosMes     int64   `json:"totalPedidosMes"`
	ProdutosMaisPedidos string  `json:"produtosMaisPedidos"`
	ClientesMaisPedidos string  `json:"clientesMaisPedidos"`
	EvolucaoSemanal     []int64 `json:"evolucaoSemanalMensal"`
}

// RankedValue is a grouped aggregate row (name and its count or sum).
type RankedValue struct {
	Name  string
	Total int64
}

// DeliveryReceipt is the content of the delivery/pickup receipt document.
type DeliveryReceipt struct {
	ClientName    string
	EventDate     string
	EventLocation string
	Items         []LineItem
	TotalValue    string
	IssuedAt      time.Time
}
