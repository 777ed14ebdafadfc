package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/pedidos/internal/contract"
	"github.com/nurpe/pedidos/internal/model"
)

const (
	pedidosSheet  = "Pedidos Selecionados"
	contractSheet = "Dados do Contrato"
)

var pedidoHeaders = []string{
	"ID do Pedido",
	"Nome do Cliente",
	"Produto",
	"Quantidade",
	"Sabor",
	"Tipo Embalagem",
	"Data Evento",
	"Data de Retirada",
	"Horário Retirada",
	"Status",
	"Criado Em",
	"Observações",
}

var itemHeaders = []string{"Quantidade", "Produto", "Valor Unitário", "Valor Total Item"}

const itemsTotalLabel = "Total dos Itens"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePedidos writes one row per pedido under a fixed header row.
func (g *Generator) GeneratePedidos(pedidos []model.Pedido) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", pedidosSheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	set := cellWriter(file, pedidosSheet)
	for i, header := range pedidoHeaders {
		set(i+1, 1, header)
	}
	for i, p := range pedidos {
		row := i + 2
		set(1, row, p.ID)
		set(2, row, p.ClienteNome)
		set(3, row, p.TipoPedido)
		set(4, row, p.Quantidade)
		set(5, row, p.Sabores)
		set(6, row, p.TipoEmbalagem)
		set(7, row, p.DataEvento)
		set(8, row, p.DataRetirada)
		set(9, row, p.HorarioRetirada)
		set(10, row, p.Status)
		set(11, row, formatDateTime(p.CreatedAt))
		set(12, row, p.Observacoes)
	}

	_ = file.SetColWidth(pedidosSheet, "A", "A", 12)
	_ = file.SetColWidth(pedidosSheet, "B", "C", 28)
	_ = file.SetColWidth(pedidosSheet, "D", "D", 12)
	_ = file.SetColWidth(pedidosSheet, "E", "E", 40)
	_ = file.SetColWidth(pedidosSheet, "F", "K", 18)
	_ = file.SetColWidth(pedidosSheet, "L", "L", 60)
	return write(file)
}

// GenerateContract writes the extracted contract fields as label/value rows,
// followed by the contracted products table and its summed item totals when
// there is one.
func (g *Generator) GenerateContract(rec model.ContractRecord) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", contractSheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	set := cellWriter(file, contractSheet)
	set(1, 1, "Campo")
	set(2, 1, "Informação Extraída")

	row := 2
	for _, field := range contractFields(rec) {
		set(1, row, field[0])
		set(2, row, field[1])
		row++
	}

	if len(rec.LineItems) > 0 {
		row += 2
		for i, header := range itemHeaders {
			set(i+1, row, header)
		}
		for _, item := range rec.LineItems {
			row++
			set(1, row, quantityCell(item.Quantity))
			set(2, row, naIfEmpty(item.Description))
			set(3, row, amountCell(item.UnitValue))
			set(4, row, amountCell(item.TotalValue))
		}
		row++
		set(3, row, itemsTotalLabel)
		set(4, row, contract.Aggregate(rec.LineItems).ItemsTotal.InexactFloat64())
	}

	_ = file.SetColWidth(contractSheet, "A", "A", 30)
	_ = file.SetColWidth(contractSheet, "B", "B", 45)
	_ = file.SetColWidth(contractSheet, "C", "D", 18)
	return write(file)
}

func contractFields(rec model.ContractRecord) [][2]string {
	fields := make([][2]string, 0, 9)
	if c, ok := rec.Contractor.Get(); ok {
		fields = append(fields,
			[2]string{"Contratante - Nome", c.Name},
			[2]string{"Contratante - RG", c.NationalID},
			[2]string{"Contratante - CPF", c.TaxID},
		)
	} else {
		fields = append(fields, [2]string{"Contratante", model.NotFoundLabel})
	}
	if c, ok := rec.ContractedParty.Get(); ok {
		fields = append(fields,
			[2]string{"Contratado - Nome Empresa", c.CompanyName},
			[2]string{"Contratado - CNPJ", c.CompanyTaxID},
		)
	} else {
		fields = append(fields, [2]string{"Contratado", model.NotFoundLabel})
	}
	return append(fields,
		[2]string{"Valor Total do Pedido", rec.TotalValue.OrElse(model.NotFoundLabel)},
		[2]string{"Data de Pagamento", rec.PaymentDate.OrElse(model.NotFoundLabel)},
		[2]string{"Data do Evento", rec.EventDate.OrElse(model.NotFoundLabel)},
		[2]string{"Local do Evento", rec.EventLocation.OrElse(model.NotFoundLabel)},
	)
}

func cellWriter(file *excelize.File, sheet string) func(col, row int, value interface{}) {
	return func(col, row int, value interface{}) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return
		}
		_ = file.SetCellValue(sheet, cell, value)
	}
}

func write(file *excelize.File) ([]byte, error) {
	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: workbook: %w", ErrWriteFailure, err)
	}
	return buf.Bytes(), nil
}

// quantityCell stores whole quantities as numbers and anything else as text.
func quantityCell(raw string) interface{} {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return naIfEmpty(raw)
}

func amountCell(raw string) interface{} {
	if value, ok := contract.ParseAmount(raw); ok {
		return value.InexactFloat64()
	}
	return naIfEmpty(raw)
}

func naIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
