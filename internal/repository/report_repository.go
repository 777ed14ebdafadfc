package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(id)
		FROM pedidos
		WHERE created_at >= ? AND created_at < ?
	`, from, to).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// TopProduct returns the pedido type with the highest ordered quantity.
// It returns nil when there are no pedidos.
func (r *ReportRepository) TopProduct(ctx context.Context) (*model.RankedValue, error) {
	return r.topOne(ctx, `
		SELECT tipo_pedido AS name, COALESCE(SUM(quantidade), 0) AS total
		FROM pedidos
		GROUP BY tipo_pedido
		ORDER BY total DESC
		LIMIT 1
	`)
}

// TopClient returns the client with the most pedidos, or nil.
func (r *ReportRepository) TopClient(ctx context.Context) (*model.RankedValue, error) {
	return r.topOne(ctx, `
		SELECT cliente_nome AS name, COUNT(id) AS total
		FROM pedidos
		GROUP BY cliente_nome
		ORDER BY total DESC
		LIMIT 1
	`)
}

func (r *ReportRepository) topOne(ctx context.Context, query string) (*model.RankedValue, error) {
	var rows []model.RankedValue
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
