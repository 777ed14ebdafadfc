package model

import "time"

const PedidoStatusPending = "pendente"

type Pedido struct {
	ID                       int64     `json:"id"`
	UserID                   int64     `json:"userId"`
	ClienteNome              string    `json:"clienteNome"`
	DataEvento               string    `json:"dataEvento"`
	DataRetirada             string    `json:"dataRetirada"`
	HorarioRetirada          string    `json:"horarioRetirada"`
	TipoPedido               string    `json:"tipoPedido"`
	Quantidade               int       `json:"quantidade"`
	Sabores                  string    `json:"sabores"`
	TipoEmbalagem            string    `json:"tipoEmbalagem"`
	Observacoes              string    `json:"observacoes"`
	Status                   string    `json:"status"`
	CreatedAt                time.Time `json:"createdAt"`
	ClienteRG                string    `gorm:"column:cliente_rg" json:"clienteRG"`
	ClienteCPF               string    `gorm:"column:cliente_cpf" json:"clienteCPF"`
	NomeContratado           string    `json:"nomeContratado"`
	CNPJContratado           string    `gorm:"column:cnpj_contratado" json:"cnpjContratado"`
	ValorTotalPedidoContrato string    `json:"valorTotalPedidoContrato"`
	DataPagamentoContrato    string    `json:"dataPagamentoContrato"`
	LocalEvento              string    `json:"localEvento"`
	ProdutosContratadosJSON  string    `gorm:"column:produtos_contratados_json" json:"produtosContratadosJson"`
}

// PedidoFilter narrows a pedido listing. Empty fields are ignored.
type PedidoFilter struct {
	Cliente    string
	DataEvento string
	Statuses   []string
}
