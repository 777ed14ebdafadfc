package model

// OrderDraft is the pedido form pre-filled from an uploaded contract.
type OrderDraft struct {
	ClienteNome              string `json:"clienteNome"`
	ClienteRG                string `json:"clienteRG"`
	ClienteCPF               string `json:"clienteCPF"`
	NomeContratado           string `json:"nomeContratado"`
	CNPJContratado           string `json:"cnpjContratado"`
	ValorTotalPedidoContrato string `json:"valorTotalPedidoContrato"`
	DataPagamentoContrato    string `json:"dataPagamentoContrato"`
	DataEvento               string `json:"dataEvento"`
	LocalEvento              string `json:"localEvento"`
	ProdutosContratadosJSON  string `json:"produtosContratadosJson"`
	Quantidade               int    `json:"quantidade"`
	Sabores                  string `json:"sabores"`
	Observacoes              string `json:"observacoes"`
}
