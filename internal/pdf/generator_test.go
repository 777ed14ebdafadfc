package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/pedidos/internal/model"
)

func TestGenerateReceiptWithItems(t *testing.T) {
	g := NewGenerator()

	out, err := g.GenerateReceipt(model.DeliveryReceipt{
		ClientName:    "Maria Silva",
		EventDate:     "25-12-2024",
		EventLocation: "Salão Primavera",
		Items: []model.LineItem{
			{Quantity: "2", Description: "Bolo de Chocolate", UnitValue: "50,00", TotalValue: "100,00"},
		},
		TotalValue: "100,00",
		IssuedAt:   time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	text, err := ExtractText(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Contains(t, text, "RELATÓRIO DE ENTREGA\n")
	assert.Contains(t, text, "Nome do Cliente: Maria Silva\n")
	assert.Contains(t, text, "Data do Evento: 25-12-2024\n")
	assert.Contains(t, text, "Local do Evento: Salão Primavera\n")
	assert.Contains(t, text, "Data de Emissão: 01/12/2024\n")
	assert.Contains(t, text, "Quantidade Produto Valor Unitário Valor Total\n")
	assert.Contains(t, text, "2 Bolo de Chocolate 50,00 100,00\n")
	assert.Contains(t, text, "Valor Total do Pedido: R$ 100,00\n")
	assert.Contains(t, text, "Responsável pela Entrega\n")
	assert.Contains(t, text, "Responsável pela Retirada\n")
	assert.NotContains(t, text, "Nenhum produto encontrado.")
}

func TestGenerateReceiptWithoutItems(t *testing.T) {
	g := NewGenerator()
	g.now = func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }

	out, err := g.GenerateReceipt(model.DeliveryReceipt{})
	require.NoError(t, err)

	text, err := ExtractText(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Contains(t, text, "Nenhum produto encontrado.\n")
	assert.Contains(t, text, "Nome do Cliente: Não encontrado\n")
	assert.Contains(t, text, "Data do Evento: Não informada\n")
	assert.Contains(t, text, "Data de Emissão: 09/03/2025\n")
}
