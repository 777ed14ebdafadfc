package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nurpe/pedidos/internal/model"
)

const weeksInEvolution = 5

type StatsStore interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	TopProduct(ctx context.Context) (*model.RankedValue, error)
	TopClient(ctx context.Context) (*model.RankedValue, error)
}

type PedidoSheetGenerator interface {
	GeneratePedidos(pedidos []model.Pedido) ([]byte, error)
}

type ReceiptGenerator interface {
	GenerateReceipt(doc model.DeliveryReceipt) ([]byte, error)
}

type ReportService struct {
	stats    StatsStore
	pedidos  PedidoStore
	sheets   PedidoSheetGenerator
	receipts ReceiptGenerator
	now      func() time.Time
}

// FileResult is a generated document ready to be sent as an attachment.
type FileResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

func NewReportService(stats StatsStore, pedidos PedidoStore, sheets PedidoSheetGenerator, receipts ReceiptGenerator) *ReportService {
	return &ReportService{
		stats:    stats,
		pedidos:  pedidos,
		sheets:   sheets,
		receipts: receipts,
		now:      time.Now,
	}
}

func (s *ReportService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	total, err := s.stats.CountCreatedBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	product, err := s.stats.TopProduct(ctx)
	if err != nil {
		return nil, err
	}
	client, err := s.stats.TopClient(ctx)
	if err != nil {
		return nil, err
	}

	weekly, err := s.weeklyEvolution(ctx, now)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalPedidosMes:     total,
		ProdutosMaisPedidos: "N/A",
		ClientesMaisPedidos: "N/A",
		EvolucaoSemanal:     weekly,
	}
	if product != nil {
		stats.ProdutosMaisPedidos = fmt.Sprintf("%s (%d)", product.Name, product.Total)
	}
	if client != nil {
		stats.ClientesMaisPedidos = fmt.Sprintf("%s (%d pedidos)", client.Name, client.Total)
	}
	return stats, nil
}

// weeklyEvolution counts pedidos per seven-day window, oldest window first,
// ending at now.
func (s *ReportService) weeklyEvolution(ctx context.Context, now time.Time) ([]int64, error) {
	counts := make([]int64, weeksInEvolution)
	for i := 0; i < weeksInEvolution; i++ {
		to := now.AddDate(0, 0, -7*(weeksInEvolution-1-i))
		from := to.AddDate(0, 0, -7)
		n, err := s.stats.CountCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}
	return counts, nil
}

func (s *ReportService) ExportSelected(ctx context.Context, ids []int64) (*FileResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: nenhum pedido selecionado", ErrInvalidInput)
	}

	pedidos, err := s.pedidos.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return nil, ErrNotFound
	}

	content, err := s.sheets.GeneratePedidos(pedidos)
	if err != nil {
		return nil, err
	}
	return &FileResult{
		FileName:    fmt.Sprintf("pedidos_selecionados_%s.xlsx", s.now().Format("20060102_150405")),
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}

func (s *ReportService) DeliveryReceipt(ctx context.Context, id int64) (*FileResult, error) {
	p, err := s.pedidos.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	items, err := decodeItems(p.ProdutosContratadosJSON)
	if err != nil {
		return nil, fmt.Errorf("pedido %d: %w", p.ID, err)
	}

	now := s.now()
	content, err := s.receipts.GenerateReceipt(model.DeliveryReceipt{
		ClientName:    p.ClienteNome,
		EventDate:     p.DataEvento,
		EventLocation: p.LocalEvento,
		Items:         items,
		TotalValue:    p.ValorTotalPedidoContrato,
		IssuedAt:      now,
	})
	if err != nil {
		return nil, err
	}
	return &FileResult{
		FileName:    fmt.Sprintf("comprovante_retirada_%d_%s.pdf", p.ID, now.Format("20060102_150405")),
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

func decodeItems(raw string) ([]model.LineItem, error) {
	if raw == "" {
		return nil, nil
	}
	var items []model.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode produtos contratados: %w", err)
	}
	return items, nil
}
