package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/pedidos/internal/model"
)

const pedidoColumns = `
	id,
	user_id,
	cliente_nome,
	data_evento,
	data_retirada,
	horario_retirada,
	tipo_pedido,
	quantidade,
	sabores,
	tipo_embalagem,
	observacoes,
	status,
	created_at,
	cliente_rg,
	cliente_cpf,
	nome_contratado,
	cnpj_contratado,
	valor_total_pedido_contrato,
	data_pagamento_contrato,
	local_evento,
	produtos_contratados_json`

type PedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) *PedidoRepository {
	return &PedidoRepository{db: db}
}

func (r *PedidoRepository) Create(ctx context.Context, p model.Pedido) (*model.Pedido, error) {
	var saved model.Pedido
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO pedidos (
			user_id,
			cliente_nome,
			data_evento,
			data_retirada,
			horario_retirada,
			tipo_pedido,
			quantidade,
			sabores,
			tipo_embalagem,
			observacoes,
			status,
			cliente_rg,
			cliente_cpf,
			nome_contratado,
			cnpj_contratado,
			valor_total_pedido_contrato,
			data_pagamento_contrato,
			local_evento,
			produtos_contratados_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING`+pedidoColumns,
		p.UserID,
		p.ClienteNome,
		p.DataEvento,
		p.DataRetirada,
		p.HorarioRetirada,
		p.TipoPedido,
		p.Quantidade,
		p.Sabores,
		p.TipoEmbalagem,
		p.Observacoes,
		p.Status,
		p.ClienteRG,
		p.ClienteCPF,
		p.NomeContratado,
		p.CNPJContratado,
		p.ValorTotalPedidoContrato,
		p.DataPagamentoContrato,
		p.LocalEvento,
		p.ProdutosContratadosJSON,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PedidoRepository) GetByID(ctx context.Context, id int64) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+pedidoColumns+`
		FROM pedidos
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

// List returns the pedidos matching filter, newest first.
func (r *PedidoRepository) List(ctx context.Context, filter model.PedidoFilter) ([]model.Pedido, error) {
	query := `SELECT` + pedidoColumns + ` FROM pedidos`
	var (
		args    []interface{}
		filters []string
	)
	if filter.Cliente != "" {
		filters = append(filters, "cliente_nome ILIKE ?")
		args = append(args, "%"+filter.Cliente+"%")
	}
	if filter.DataEvento != "" {
		filters = append(filters, "data_evento = ?")
		args = append(args, filter.DataEvento)
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		filters = append(filters, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var pedidos []model.Pedido
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *PedidoRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Pedido, error) {
	if len(ids) == 0 {
		return []model.Pedido{}, nil
	}
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+pedidoColumns+`
		FROM pedidos
		WHERE id IN ?
		ORDER BY id ASC
	`, ids).Scan(&pedidos).Error
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

// Update applies the given column values to a pedido.
func (r *PedidoRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Table("pedidos").Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PedidoRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM pedidos WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
