package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/pedidos/internal/model"
)

func TestMapDraftFromFullContract(t *testing.T) {
	draft, err := MapDraft(Parse(sampleContract), "contrato-maria.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", draft.ClienteNome)
	assert.Equal(t, "12.345.678-9", draft.ClienteRG)
	assert.Equal(t, "123.456.789-00", draft.ClienteCPF)
	assert.Equal(t, "Doces da Vovó LTDA", draft.NomeContratado)
	assert.Equal(t, "12.345.678/0001-90", draft.CNPJContratado)
	assert.Equal(t, "250,00", draft.ValorTotalPedidoContrato)
	assert.Equal(t, "10/12/2024", draft.DataPagamentoContrato)
	assert.Equal(t, "25-12-2024", draft.DataEvento)
	assert.Equal(t, "Salão Primavera, Rua das Flores 123", draft.LocalEvento)
	assert.Equal(t, 102, draft.Quantidade)
	assert.Equal(t, "Bolo de Chocolate, Brigadeiro Gourmet", draft.Sabores)
	assert.Equal(t, "Extraído de contrato: contrato-maria.pdf. Valor Total: R$250,00", draft.Observacoes)

	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(draft.ProdutosContratadosJSON), &items))
	require.Len(t, items, 2)
	assert.Equal(t, map[string]string{
		"Quantidade":       "2",
		"Produto":          "Bolo de Chocolate",
		"Valor Unitário":   "50,00",
		"Valor Total Item": "100,00",
	}, items[0])
}

func TestMapDraftDefaults(t *testing.T) {
	draft, err := MapDraft(model.ContractRecord{}, "vazio.pdf")
	require.NoError(t, err)

	assert.Equal(t, model.OrderDraft{
		ClienteNome:             UnknownClientName,
		ProdutosContratadosJSON: "[]",
		Observacoes:             "Extraído de contrato: vazio.pdf. Valor Total: R$N/A",
	}, draft)
}

func TestMapDraftEmptyItemsSection(t *testing.T) {
	rec := Parse("PRODUTOS CONTRATADOS\nsem itens\nCLÁUSULA 2")

	draft, err := MapDraft(rec, "a.pdf")
	require.NoError(t, err)

	assert.Equal(t, 0, draft.Quantidade)
	assert.Equal(t, "", draft.Sabores)
	assert.Equal(t, "[]", draft.ProdutosContratadosJSON)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "25-12-2024", NormalizeDate("25/12/2024"))
	assert.Equal(t, "31-02-2024", NormalizeDate("31/02/2024"))
	assert.Equal(t, "", NormalizeDate(""))
}

func TestMapReceipt(t *testing.T) {
	issued := time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC)
	rec := Parse(sampleContract)

	got := MapReceipt(rec, issued)

	assert.Equal(t, "Maria Silva", got.ClientName)
	assert.Equal(t, "25/12/2024", got.EventDate)
	assert.Equal(t, "250,00", got.TotalValue)
	assert.Equal(t, rec.LineItems, got.Items)
	assert.Equal(t, issued, got.IssuedAt)

	empty := MapReceipt(model.ContractRecord{}, issued)
	assert.Empty(t, empty.ClientName)
	assert.Empty(t, empty.Items)
}
