package excel

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/pedidos/internal/model"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	return file
}

func TestGeneratePedidos(t *testing.T) {
	data, err := NewGenerator().GeneratePedidos([]model.Pedido{
		{
			ID:              4,
			ClienteNome:     "Maria Silva",
			TipoPedido:      "Docinhos",
			Quantidade:      100,
			Sabores:         "Brigadeiro, Beijinho",
			DataEvento:      "25-12-2024",
			DataRetirada:    "24-12-2024",
			HorarioRetirada: "14:00",
			Status:          "pendente",
			CreatedAt:       time.Date(2024, 12, 1, 9, 5, 0, 0, time.UTC),
			Observacoes:     "sem lactose",
		},
	})
	require.NoError(t, err)

	file := openWorkbook(t, data)
	rows, err := file.GetRows(pedidosSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, pedidoHeaders, rows[0])
	assert.Equal(t, []string{
		"4", "Maria Silva", "Docinhos", "100", "Brigadeiro, Beijinho", "",
		"25-12-2024", "24-12-2024", "14:00", "pendente", "2024-12-01 09:05:00", "sem lactose",
	}, rows[1])
}

func TestGenerateContract(t *testing.T) {
	rec := model.ContractRecord{
		Contractor: model.Some(model.Contractor{Name: "Maria Silva", NationalID: "12.345.678-9", TaxID: "123.456.789-00"}),
		LineItems: []model.LineItem{
			{Quantity: "2", Description: "Bolo de Chocolate", UnitValue: "50,00", TotalValue: "1.100,50"},
		},
		TotalValue: model.Some("1.100,50"),
		EventDate:  model.Some("25/12/2024"),
	}

	data, err := NewGenerator().GenerateContract(rec)
	require.NoError(t, err)

	file := openWorkbook(t, data)
	rows, err := file.GetRows(contractSheet)
	require.NoError(t, err)

	assert.Equal(t, []string{"Campo", "Informação Extraída"}, rows[0])
	assert.Equal(t, []string{"Contratante - Nome", "Maria Silva"}, rows[1])
	assert.Equal(t, []string{"Contratado", model.NotFoundLabel}, rows[4])
	assert.Equal(t, []string{"Valor Total do Pedido", "1.100,50"}, rows[5])
	assert.Equal(t, []string{"Data de Pagamento", model.NotFoundLabel}, rows[6])
	assert.Equal(t, []string{"Data do Evento", "25/12/2024"}, rows[7])

	headerRow := len(rows) - 3
	assert.Equal(t, itemHeaders, rows[headerRow])

	total, err := file.GetCellValue(contractSheet, "D"+strconv.Itoa(headerRow+2), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1100.5", total)
}

func TestGenerateContractItemsTotalRow(t *testing.T) {
	tests := []struct {
		name  string
		items []model.LineItem
		want  string
	}{
		{
			name: "sums every item total",
			items: []model.LineItem{
				{Quantity: "2", Description: "Bolo de Chocolate", UnitValue: "50,00", TotalValue: "100,00"},
				{Quantity: "100", Description: "Brigadeiro", UnitValue: "1,50", TotalValue: "1.150,25"},
			},
			want: "1250.25",
		},
		{
			name: "unreadable totals count as zero",
			items: []model.LineItem{
				{Quantity: "1", Description: "Torta", UnitValue: "a combinar", TotalValue: "a combinar"},
				{Quantity: "3", Description: "Pudim", UnitValue: "20,00", TotalValue: "60,00"},
			},
			want: "60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewGenerator().GenerateContract(model.ContractRecord{LineItems: tt.items})
			require.NoError(t, err)

			file := openWorkbook(t, data)
			rows, err := file.GetRows(contractSheet)
			require.NoError(t, err)

			last := len(rows)
			require.Len(t, rows[last-1], 4)
			assert.Equal(t, itemsTotalLabel, rows[last-1][2])
			assert.Equal(t, itemHeaders, rows[last-2-len(tt.items)])

			total, err := file.GetCellValue(contractSheet, "D"+strconv.Itoa(last), excelize.Options{RawCellValue: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestGenerateContractWithoutItems(t *testing.T) {
	data, err := NewGenerator().GenerateContract(model.ContractRecord{})
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(contractSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
	assert.Equal(t, []string{"Contratante", model.NotFoundLabel}, rows[1])
}

func TestAmountCell(t *testing.T) {
	assert.Equal(t, 1234.56, amountCell("1.234,56"))
	assert.Equal(t, "N/A", amountCell(""))
	assert.Equal(t, "a combinar", amountCell("a combinar"))
	assert.Equal(t, 3, quantityCell(" 3 "))
	assert.Equal(t, "x", quantityCell("x"))
}
