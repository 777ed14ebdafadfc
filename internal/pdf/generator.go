package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/pedidos/internal/model"
)

// Generator renders the delivery receipt. Text goes through a cp1252
// translator so the core fonts can print Portuguese accents.
type Generator struct {
	fontName string
	now      func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica", now: time.Now}
}

func (g *Generator) GenerateReceipt(doc model.DeliveryReceipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	issuedAt := doc.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = g.now()
	}

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr("RELATÓRIO DE ENTREGA"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "", 11)
	header := []string{
		fmt.Sprintf("Nome do Cliente: %s", safeValue(doc.ClientName, model.NotFoundLabel)),
		fmt.Sprintf("Data do Evento: %s", safeValue(doc.EventDate, "Não informada")),
		fmt.Sprintf("Local do Evento: %s", safeValue(doc.EventLocation, "Não informado")),
		fmt.Sprintf("Data de Emissão: %s", issuedAt.Format("02/01/2006")),
	}
	for _, line := range header {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Produtos Contratados:"), "", 1, "L", false, 0, "")

	if len(doc.Items) == 0 {
		pdf.SetFont(g.fontName, "", 11)
		pdf.CellFormat(0, 6, "Nenhum produto encontrado.", "", 1, "L", false, 0, "")
	} else {
		widths := []float64{25, 85, 35, 35}
		drawTableRow(pdf, g.fontName, tr, []string{"Quantidade", "Produto", "Valor Unitário", "Valor Total"}, widths, true)
		for _, item := range doc.Items {
			row := []string{
				safeValue(item.Quantity, "N/A"),
				safeValue(item.Description, "N/A"),
				safeValue(item.UnitValue, "N/A"),
				safeValue(item.TotalValue, "N/A"),
			}
			drawTableRow(pdf, g.fontName, tr, row, widths, false)
		}
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Valor Total do Pedido: R$ %s", safeValue(doc.TotalValue, model.NotFoundLabel))), "", 1, "L", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Assinaturas:", "", 1, "L", false, 0, "")
	signatureBlock(pdf, g.fontName, tr, "Responsável pela Entrega")
	pdf.Ln(10)
	signatureBlock(pdf, g.fontName, tr, "Responsável pela Retirada")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i != 1 && !header {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, label string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, "______________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(label), "", 1, "L", false, 0, "")
}

func safeValue(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
