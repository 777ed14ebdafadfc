package contract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/pedidos/internal/model"
)

const UnknownClientName = "Cliente Desconhecido"

// MapDraft turns a parsed contract into a pedido draft. Absent fields become
// empty strings, except the client name which falls back to
// UnknownClientName. fileName is only used in the notes.
func MapDraft(rec model.ContractRecord, fileName string) (model.OrderDraft, error) {
	contractor, _ := rec.Contractor.Get()
	contracted, _ := rec.ContractedParty.Get()

	items := rec.LineItems
	if items == nil {
		items = []model.LineItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return model.OrderDraft{}, fmt.Errorf("encode line items: %w", err)
	}

	clientName := contractor.Name
	if !rec.Contractor.Present() {
		clientName = UnknownClientName
	}

	summary := Aggregate(items)
	return model.OrderDraft{
		ClienteNome:              clientName,
		ClienteRG:                contractor.NationalID,
		ClienteCPF:               contractor.TaxID,
		NomeContratado:           contracted.CompanyName,
		CNPJContratado:           contracted.CompanyTaxID,
		ValorTotalPedidoContrato: rec.TotalValue.OrElse(""),
		DataPagamentoContrato:    rec.PaymentDate.OrElse(""),
		DataEvento:               NormalizeDate(rec.EventDate.OrElse("")),
		LocalEvento:              rec.EventLocation.OrElse(""),
		ProdutosContratadosJSON:  string(encoded),
		Quantidade:               summary.Quantity,
		Sabores:                  summary.Flavors,
		Observacoes: fmt.Sprintf("Extraído de contrato: %s. Valor Total: R$%s",
			fileName, rec.TotalValue.OrElse("N/A")),
	}, nil
}

// NormalizeDate swaps slash separators for dashes ("25/12/2024" -> "25-12-2024").
// The date is not validated.
func NormalizeDate(raw string) string {
	return strings.ReplaceAll(raw, "/", "-")
}

// MapReceipt builds the delivery receipt content straight from a parsed
// contract, without a stored pedido.
func MapReceipt(rec model.ContractRecord, issuedAt time.Time) model.DeliveryReceipt {
	contractor, _ := rec.Contractor.Get()
	return model.DeliveryReceipt{
		ClientName:    contractor.Name,
		EventDate:     rec.EventDate.OrElse(""),
		EventLocation: rec.EventLocation.OrElse(""),
		Items:         rec.LineItems,
		TotalValue:    rec.TotalValue.OrElse(""),
		IssuedAt:      issuedAt,
	}
}
